// Package oracle dials Oracle databases through the pure-Go
// github.com/sijms/go-ora/v2 driver.
//
// The DSN from the credential set is an easy-connect locator
// ("host[:port]/service", port 1521 when omitted, IPv6 hosts in brackets),
// a full "oracle://" URL, a "(DESCRIPTION=...)" connect descriptor or a
// tnsnames alias resolved by go-ora through TNS_ADMIN.
// User and password always come from the credential set and replace any
// userinfo present in a URL.
//
// The liveness statement is "SELECT 1 FROM DUAL".
package oracle
