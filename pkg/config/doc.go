// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type is
// parsed once and cached for the life of the process, so packages can call
// Load from constructors without re-reading the environment.
//
//	var cfg sanitizer.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	engine, err := sanitizer.NewFromConfig(cfg)
//
// Errors are sentinels usable with errors.Is: ErrParsingConfig,
// ErrInvalidConfigType, ErrLoadingEnvFile and ErrNilPointer.
//
// ResetCache clears the cache between tests.
package config
