package registry

import (
	"testing"

	cfg "github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type stubFactory struct {
	name string
}

func (f *stubFactory) CreateCommand(t *i18n.Translations, cfg *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewRegistry(&cfg.Config{}, trans)
}

func TestRegister(t *testing.T) {
	t.Run("registra una factory nueva", func(t *testing.T) {
		r := newTestRegistry(t)

		err := r.Register("track", &stubFactory{name: "track"})

		assert.NoError(t, err)
	})

	t.Run("registrar dos veces el mismo nombre falla", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Register("track", &stubFactory{name: "track"}))

		err := r.Register("track", &stubFactory{name: "track"})

		assert.Error(t, err)
	})
}

func TestCreateCommands(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Register("track", &stubFactory{name: "track"}))
	require.NoError(t, r.Register("config", &stubFactory{name: "config"}))

	commands := r.CreateCommands()

	require.Len(t, commands, 2)
	names := []string{commands[0].Name, commands[1].Name}
	assert.ElementsMatch(t, []string{"track", "config"}, names)
}
