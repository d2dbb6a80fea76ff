package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/mysql"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name   string
		dsn    string
		addr   string
		dbName string
	}{
		{name: "native", dsn: "tcp(db.example.com:3307)/stats?parseTime=true", addr: "db.example.com:3307", dbName: "stats"},
		{name: "shorthand", dsn: "db.example.com:3306/stats", addr: "db.example.com:3306", dbName: "stats"},
		{name: "shorthand default port", dsn: "db.example.com/stats", addr: "db.example.com:3306", dbName: "stats"},
		{name: "embedded user replaced", dsn: "root:root@tcp(127.0.0.1:3306)/stats", addr: "127.0.0.1:3306", dbName: "stats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := mysql.ParseConfig(credentials.Set{User: "probe", Password: "secret", DSN: tt.dsn})
			require.NoError(t, err)
			assert.Equal(t, "tcp", cfg.Net)
			assert.Equal(t, tt.addr, cfg.Addr)
			assert.Equal(t, tt.dbName, cfg.DBName)
			assert.Equal(t, "probe", cfg.User)
			assert.Equal(t, "secret", cfg.Passwd)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := mysql.ParseConfig(credentials.Set{User: "u", Password: "p", DSN: "tcp(db:3306)"})
	assert.ErrorIs(t, err, mysql.ErrInvalidDSN)
}

func TestDial_InvalidDSN(t *testing.T) {
	conn, err := mysql.Dial(context.Background(), credentials.Set{User: "u", Password: "p", DSN: "tcp(db:3306)"})
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, mysql.ErrInvalidDSN)
}

func TestQueries(t *testing.T) {
	assert.Equal(t, "SELECT 1", mysql.Queries.Liveness)
	assert.Equal(t, "SELECT VERSION()", mysql.Queries.Version)
}
