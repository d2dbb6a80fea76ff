// Package pg dials PostgreSQL using the pgx/v5 driver.
//
// Unlike a service bootstrap, the probe needs exactly one session, so Dial
// opens a single *pgx.Conn rather than a pool. The DSN of the credential set
// may be any connection string pgx understands (URL or keyword/value form);
// user and password from the credential set always override those in the DSN.
//
// The liveness statement is "SELECT 1"; the server version is read from the
// server_version parameter announced during startup, so no extra round trip
// is needed.
//
// # Error Handling
//
// Dial failures are returned exactly as pgx reports them. A DSN that cannot be
// parsed is reported as ErrFailedToParseDBConfig joined with the parser error.
package pg
