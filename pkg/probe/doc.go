// Package probe runs one connect-query-close cycle per connection name and
// classifies the outcome.
//
// A Runner borrows a connection through a Connector, runs the driver's
// liveness statement (and, for RunAll, asks for the server version) and turns
// whatever happened into a Result. Each Result renders the console message
// for its kind and is logged independently of what gets printed:
//
//	r := probe.New(connector, probe.WithLogger(log))
//	res := r.Run(ctx, "MEDIN")
//	fmt.Println(res.Message()) // Prueba OK, DUAL=> 1
//
// Failures never escape as errors or panics; they are always reported as a
// Result with a non-OK Kind.
package probe
