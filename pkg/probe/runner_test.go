package probe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/dbconn"
	"github.com/dmitrymomot/dbprobe/pkg/probe"
)

type stubConn struct {
	value      any
	version    string
	livenessFn func() (any, error)
	versionErr error
	closed     int
}

func (c *stubConn) Liveness(context.Context) (any, error) {
	if c.livenessFn != nil {
		return c.livenessFn()
	}
	return c.value, nil
}

func (c *stubConn) ServerVersion(context.Context) (string, error) {
	return c.version, c.versionErr
}

func (c *stubConn) Close(context.Context) error {
	c.closed++
	return nil
}

func stubDriver(conn *stubConn, err error) dbconn.Driver {
	return dbconn.DriverFunc(func(context.Context, credentials.Set) (dbconn.Conn, error) {
		if err != nil {
			return nil, err
		}
		return conn, nil
	})
}

func setMedin(t *testing.T, user, password, dsn string) {
	t.Helper()
	t.Setenv("user_MEDIN", user)
	t.Setenv("password_MEDIN", password)
	t.Setenv("dsn_MEDIN", dsn)
	t.Setenv("driver_MEDIN", "")
}

func newRunner(t *testing.T, conn *stubConn, dialErr error, log *bytes.Buffer, names ...string) *probe.Runner {
	t.Helper()
	connector := dbconn.New(
		dbconn.WithLoader(credentials.NewLoader(names...).Load),
		dbconn.WithDriver("oracle", stubDriver(conn, dialErr)),
	)
	var opts []probe.Option
	if log != nil {
		opts = append(opts, probe.WithLogger(slog.New(slog.NewTextHandler(log, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	return probe.New(connector, opts...)
}

func TestRun_Success(t *testing.T) {
	setMedin(t, "u", "p", "d")
	conn := &stubConn{value: 1}
	var log bytes.Buffer

	res := newRunner(t, conn, nil, &log, "MEDIN").Run(context.Background(), "MEDIN")

	require.True(t, res.OK())
	assert.Equal(t, probe.KindOK, res.Kind)
	assert.Equal(t, "Prueba OK, DUAL=> 1", res.Message())
	assert.Equal(t, 1, conn.closed)
	assert.Contains(t, log.String(), "probe succeeded")
	assert.Contains(t, log.String(), "connection=MEDIN")
	assert.Contains(t, log.String(), "outcome=ok")
}

func TestRun_EmptyUser(t *testing.T) {
	setMedin(t, "", "p", "d")
	conn := &stubConn{value: 1}

	res := newRunner(t, conn, nil, nil, "MEDIN").Run(context.Background(), "MEDIN")

	assert.False(t, res.OK())
	assert.Equal(t, probe.KindConfiguration, res.Kind)
	assert.True(t, strings.HasPrefix(res.Message(), "Error inesperado: "), res.Message())
	assert.Contains(t, res.Message(), "user_MEDIN")
	assert.NotContains(t, res.Message(), "Prueba OK")
	assert.Zero(t, conn.closed)
}

func TestRun_NotFound(t *testing.T) {
	setMedin(t, "u", "p", "d")

	res := newRunner(t, &stubConn{}, nil, nil, "MEDIN").Run(context.Background(), "OTHER")

	assert.Equal(t, probe.KindNotFound, res.Kind)
	assert.Equal(t, "Error: No se encontró la configuración 'OTHER' en el config manager.", res.Message())
}

func TestRun_ConnectionError(t *testing.T) {
	setMedin(t, "u", "p", "d")
	dialErr := errors.New("ORA-12541: TNS:no listener")
	var log bytes.Buffer

	res := newRunner(t, &stubConn{}, dialErr, &log, "MEDIN").Run(context.Background(), "MEDIN")

	assert.Equal(t, probe.KindConnection, res.Kind)
	assert.Equal(t, "oracle", res.Driver)
	assert.ErrorIs(t, res.Err, dialErr)
	assert.Equal(t, "Error de conexión a Oracle: ORA-12541: TNS:no listener", res.Message())
	assert.Contains(t, log.String(), "probe failed")
	assert.Contains(t, log.String(), "outcome=connection")
}

func TestRun_LivenessError(t *testing.T) {
	setMedin(t, "u", "p", "d")
	conn := &stubConn{livenessFn: func() (any, error) {
		return nil, errors.New("ORA-03113: end-of-file on communication channel")
	}}

	res := newRunner(t, conn, nil, nil, "MEDIN").Run(context.Background(), "MEDIN")

	assert.Equal(t, probe.KindConnection, res.Kind)
	assert.Equal(t, "oracle", res.Driver)
	assert.Equal(t, "Error de conexión a Oracle: ORA-03113: end-of-file on communication channel", res.Message())
	assert.NotContains(t, res.Message(), "\n")
	assert.Equal(t, 1, conn.closed)
}

func TestRun_PanicRecovered(t *testing.T) {
	setMedin(t, "u", "p", "d")
	conn := &stubConn{livenessFn: func() (any, error) { panic("boom") }}

	var res probe.Result
	require.NotPanics(t, func() {
		res = newRunner(t, conn, nil, nil, "MEDIN").Run(context.Background(), "MEDIN")
	})

	assert.Equal(t, probe.KindUnexpected, res.Kind)
	assert.Equal(t, "Error inesperado: panic: boom", res.Message())
	assert.Equal(t, 1, conn.closed)
}

func TestRunAll(t *testing.T) {
	setMedin(t, "u", "p", "d")
	conn := &stubConn{value: 1, version: "Oracle Database 19c"}

	results := newRunner(t, conn, nil, nil, "MEDIN").RunAll(context.Background(), []string{"MEDIN", "OTHER"})
	require.Len(t, results, 2)

	assert.Equal(t, "✅ MEDIN: versión Oracle Database 19c", results[0].Summary())
	assert.Equal(t, probe.KindNotFound, results[1].Kind)
	assert.True(t, strings.HasPrefix(results[1].Summary(), "❌ OTHER: "))

	var out bytes.Buffer
	require.NoError(t, probe.FprintSummary(&out, results...))
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestRunAll_VersionError(t *testing.T) {
	setMedin(t, "u", "p", "d")
	conn := &stubConn{value: 1, versionErr: errors.New("permission denied")}

	results := newRunner(t, conn, nil, nil, "MEDIN").RunAll(context.Background(), []string{"MEDIN"})
	require.Len(t, results, 1)
	assert.Equal(t, "❌ MEDIN: permission denied", results[0].Summary())
	assert.Equal(t, 1, conn.closed)
}

func TestFprint(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, probe.Fprint(&out,
		probe.Result{Name: "MEDIN", Kind: probe.KindOK, Value: 1},
		probe.Result{Name: "X", Kind: probe.KindConnection, Driver: "postgres", Err: errors.New("refused")},
	))
	assert.Equal(t, "Prueba OK, DUAL=> 1\nError de conexión a PostgreSQL: refused\n", out.String())
}
