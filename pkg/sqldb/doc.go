// Package sqldb wraps a single database/sql connection behind the probe's
// connection contract. Drivers built on database/sql (Oracle, MySQL) open a
// *sql.DB limited to one connection, then pin that connection with
// (*sql.DB).Conn so the handle maps to exactly one network session.
package sqldb
