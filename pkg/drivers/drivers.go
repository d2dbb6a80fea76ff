// Package drivers assembles the registry of database drivers known to the
// probe.
package drivers

import (
	"strings"

	"github.com/dmitrymomot/dbprobe/pkg/dbconn"
	"github.com/dmitrymomot/dbprobe/pkg/mongo"
	"github.com/dmitrymomot/dbprobe/pkg/mysql"
	"github.com/dmitrymomot/dbprobe/pkg/opensearch"
	"github.com/dmitrymomot/dbprobe/pkg/oracle"
	"github.com/dmitrymomot/dbprobe/pkg/pg"
	"github.com/dmitrymomot/dbprobe/pkg/redis"
)

var displayNames = map[string]string{
	oracle.DriverName:     "Oracle",
	pg.DriverName:         "PostgreSQL",
	mysql.DriverName:      "MySQL",
	redis.DriverName:      "Redis",
	mongo.DriverName:      "MongoDB",
	opensearch.DriverName: "OpenSearch",
}

// Default returns a fresh map of every built-in driver keyed by driver name.
func Default() map[string]dbconn.Driver {
	return map[string]dbconn.Driver{
		oracle.DriverName:     dbconn.Adapt(oracle.Dial),
		pg.DriverName:         dbconn.Adapt(pg.Dial),
		mysql.DriverName:      dbconn.Adapt(mysql.Dial),
		redis.DriverName:      dbconn.Adapt(redis.Dial),
		mongo.DriverName:      dbconn.Adapt(mongo.Dial),
		opensearch.DriverName: dbconn.Adapt(opensearch.Dial),
	}
}

// DisplayName returns the product name used in user-facing messages.
// Unknown drivers are returned unchanged.
func DisplayName(driver string) string {
	if name, ok := displayNames[strings.ToLower(driver)]; ok {
		return name
	}
	return driver
}
