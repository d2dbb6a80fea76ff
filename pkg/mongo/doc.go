// Package mongo dials MongoDB with the official v2 driver and exposes the
// client through the probe's connection contract.
//
// The DSN must be a mongodb:// or mongodb+srv:// URI. The credential set's user
// and password are applied with SetAuth, the pool is capped at one connection
// and driver-level retries are disabled.
//
// Liveness runs {ping: 1} against the admin database and returns the "ok"
// field; the server version comes from buildInfo.
package mongo
