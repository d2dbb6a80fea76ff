package probe

import (
	"fmt"
	"io"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/drivers"
)

// Result describes a single probe.
type Result struct {
	Name    string
	Driver  string
	Kind    Kind
	Value   any
	Version string
	Err     error
}

// OK reports whether the probe succeeded.
func (r Result) OK() bool {
	return r.Kind == KindOK
}

// Message renders the console line of a single-connection probe.
func (r Result) Message() string {
	switch r.Kind {
	case KindOK:
		return fmt.Sprintf("Prueba OK, DUAL=> %v", r.Value)
	case KindNotFound:
		return fmt.Sprintf("Error: No se encontró la configuración '%s' en el config manager.", r.Name)
	case KindConnection:
		driver := r.Driver
		if driver == "" {
			driver = credentials.DefaultDriver
		}
		return fmt.Sprintf("Error de conexión a %s: %v", drivers.DisplayName(driver), r.Err)
	case KindConfiguration:
		return fmt.Sprintf("Error inesperado: %v", r.Err)
	default:
		return fmt.Sprintf("Error inesperado: %v", r.Err)
	}
}

// Summary renders the one-line status used when probing every connection.
func (r Result) Summary() string {
	if r.OK() {
		return fmt.Sprintf("✅ %s: versión %s", r.Name, r.Version)
	}
	return fmt.Sprintf("❌ %s: %v", r.Name, r.Err)
}

// Fprint writes the Message of each result on its own line.
func Fprint(w io.Writer, results ...Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Message()); err != nil {
			return err
		}
	}
	return nil
}

// FprintSummary writes the Summary of each result on its own line.
func FprintSummary(w io.Writer, results ...Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Summary()); err != nil {
			return err
		}
	}
	return nil
}
