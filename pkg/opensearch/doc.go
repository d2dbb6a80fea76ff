// Package opensearch checks an OpenSearch cluster with the official
// opensearch-go client.
//
// The DSN is a comma-separated list of node URLs. The credential set's user
// and password are used for HTTP basic authentication and client retries are
// disabled.
//
// Liveness is a ping (HEAD /) returning the HTTP status code; the server
// version is version.number from GET /.
package opensearch
