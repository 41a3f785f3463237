package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colores para los distintos tipos de mensaje
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

// PrintInfo imprime un mensaje informativo en cian.
func PrintInfo(msg string) {
	_, _ = Info.Println(msg)
}

// PrintSuccess imprime un mensaje de éxito en verde.
func PrintSuccess(msg string) {
	_, _ = Success.Println(msg)
}

// PrintWarning imprime una advertencia en amarillo.
func PrintWarning(msg string) {
	_, _ = Warning.Println(msg)
}

// PrintError imprime un error en rojo.
func PrintError(msg string) {
	_, _ = Error.Println(msg)
}

// PrintReport imprime el reporte final sin decoración, para que el stdout
// sea apto para redirigir a un archivo.
func PrintReport(report string) {
	fmt.Println(report)
}

// WaitSpinner es el spinner que se muestra mientras esperamos al colaborador
// de IA.
type WaitSpinner struct {
	spinner *spinner.Spinner
}

// NewWaitSpinner crea un spinner con un mensaje inicial.
func NewWaitSpinner(message string) *WaitSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
	)
	return &WaitSpinner{spinner: s}
}

func (s *WaitSpinner) Start() {
	s.spinner.Start()
}

func (s *WaitSpinner) Stop() {
	s.spinner.Stop()
}
