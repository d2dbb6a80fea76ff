// Package redis dials a Redis server with the go-redis client and exposes it
// through the probe's connection contract.
//
// The DSN is either "host:port" or a redis:// (rediss:// for TLS) URL. The
// credential set's user and password are applied as ACL credentials and
// override any userinfo in the URL. The client is limited to a single pooled
// connection and client-side retries are disabled, so one probe is one
// session.
//
// Liveness is PING (value "PONG"); the server version is read from
// INFO server.
package redis
