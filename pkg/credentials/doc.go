// Package credentials loads named database credential groups from the process
// environment.
//
// Every connection name NAME is described by three required variables and one
// optional variable:
//
//	user_NAME      database user
//	password_NAME  database password
//	dsn_NAME       data source name (host/service locator)
//	driver_NAME    optional driver name, "oracle" when unset
//
// Load validates each group eagerly. When a group is incomplete it fails with a
// *ConfigurationError listing every missing variable of that group; no partial
// Map is returned. The environment is read again on every call, nothing is
// cached.
//
// # Usage
//
//	sets, err := credentials.Load("MEDIN")
//	if err != nil {
//	    var cfgErr *credentials.ConfigurationError
//	    if errors.As(err, &cfgErr) {
//	        log.Printf("missing: %v", cfgErr.Missing)
//	    }
//	    return err
//	}
//	medin := sets["MEDIN"]
//
// Passwords are held in a Secret which redacts itself in fmt and slog output.
// Call Reveal to obtain the raw value when handing it to a driver.
package credentials
