// Package environment names the deployment environment the probe runs in
// (development, staging, production) and carries it through context.Context
// so structured logs can be tagged with it.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//
//	log := logger.New(
//	    logger.WithEnvironment(string(env), "dbprobe"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
package environment
