// Package dbconn opens exactly one database connection per call and
// guarantees that it is closed before control returns to the caller.
//
// A Connector combines a credential loader with a registry of drivers. Its
// WithConnection method walks the following steps:
//
//  1. load the credential map (configuration errors propagate unchanged);
//  2. look up the requested name, failing with *NotFoundError before any
//     network call;
//  3. resolve the driver named in the credential set;
//  4. dial, failing with *ConnectionError which unwraps to the driver error;
//  5. hand a scoped Conn to the callback;
//  6. close the connection on every exit path, including panics.
//
// The handle given to the callback is only valid inside it. Any use after
// the callback returns yields ErrHandleClosed.
//
// # Usage
//
//	c := dbconn.New(
//	    dbconn.WithLoader(credentials.NewLoader("MEDIN").Load),
//	    dbconn.WithDrivers(drivers.Default()),
//	)
//
//	err := c.WithConnection(ctx, "MEDIN", func(ctx context.Context, conn dbconn.Conn) error {
//	    v, err := conn.Liveness(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println("Prueba OK, DUAL=>", v)
//	    return nil
//	})
//
// # Error Handling
//
// Sentinels for errors.Is: ErrNotFound, ErrUnknownDriver, ErrConnection,
// ErrHandleClosed. The typed errors carry the connection name and driver.
package dbconn
