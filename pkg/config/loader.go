package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv reads the given .env files, or ".env" when none are given, into
// the process environment without overriding variables that are already set.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load parses the environment into a new T.
func Load[T any]() (T, error) {
	v, err := env.ParseAs[T]()
	if err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// LoadInto parses the environment into v, keeping fields that have no
// matching variable and no envDefault.
func LoadInto[T any](v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if parsing fails.
func MustLoad[T any]() T {
	v, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return v
}
