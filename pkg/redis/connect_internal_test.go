package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	info := "# Server\r\nredis_version:7.2.4\r\nredis_git_sha1:00000000\r\n"
	assert.Equal(t, "7.2.4", parseVersion(info))
	assert.Equal(t, "", parseVersion("# Server\r\n"))
}
