package config

import "fmt"

// Error represents an error in loading or validating config.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}

func errMissingEnv(name string) Error {
	return Error{reason: fmt.Sprintf("environment variable %s is not set", name)}
}
