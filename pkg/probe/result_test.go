package probe_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/probe"
)

func TestResult_Message(t *testing.T) {
	cfgErr := &credentials.ConfigurationError{Name: "MEDIN", Missing: []string{"user_MEDIN"}}
	tests := []struct {
		name string
		res  probe.Result
		want string
	}{
		{"ok", probe.Result{Name: "MEDIN", Kind: probe.KindOK, Value: 1}, "Prueba OK, DUAL=> 1"},
		{"not found", probe.Result{Name: "X", Kind: probe.KindNotFound}, "Error: No se encontró la configuración 'X' en el config manager."},
		{"connection default driver", probe.Result{Kind: probe.KindConnection, Err: errors.New("refused")}, "Error de conexión a Oracle: refused"},
		{"connection mongodb", probe.Result{Kind: probe.KindConnection, Driver: "mongodb", Err: errors.New("refused")}, "Error de conexión a MongoDB: refused"},
		{"configuration", probe.Result{Kind: probe.KindConfiguration, Err: cfgErr}, "Error inesperado: missing environment variables for MEDIN: user_MEDIN"},
		{"unexpected", probe.Result{Kind: probe.KindUnexpected, Err: errors.New("boom")}, "Error inesperado: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Message())
		})
	}
}
