// Package mysql dials MySQL and MariaDB through github.com/go-sql-driver/mysql.
//
// Accepted DSN forms are the driver's native syntax ("tcp(host:3306)/db?...")
// and the shorthand "host[:port]/db", which is rewritten to TCP. Credentials
// from the credential set replace any user/password embedded in the DSN.
package mysql
