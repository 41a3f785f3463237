package version

import "fmt"

// Version se sobreescribe en build con -ldflags.
var (
	Version = "1.0.0"
	Commit  = "dev"
)

func FullVersion() string {
	return fmt.Sprintf("v%s (%s)", Version, Commit)
}
