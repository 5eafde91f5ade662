// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//	    Signer signer.Config
//	    Cookie cookie.Config
//	}
//
//	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
//	    log.Fatal(err)
//	}
//	cfg, err := config.Load[Config]()
//
// Values already present in the environment win over values from .env
// files. Load starts from the zero value of T; use LoadInto to parse over
// a struct that already holds defaults.
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig.
package config
