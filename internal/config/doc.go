// Package config provides configuration management for the Happy Number service.
//
// Configuration is loaded from environment variables using the env package.
// Every value has a default, so the service starts with no environment set
// and listens for HTTP on port 5000.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
