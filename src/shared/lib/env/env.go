package env

import (
	"os"

	"github.com/cockroachdb/errors"
)

const Key = "ENVIRONMENT"

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Test        Environment = "test"
)

func Lookup() (Environment, error) {
	environment, ok := os.LookupEnv(Key)
	if environment == "" || !ok {
		return "", errors.Newf("%s is not set", Key)
	}

	switch Environment(environment) {
	case Production, Development, Test:
		return Environment(environment), nil
	default:
		return "", errors.Newf("%s has an unknown value %q", Key, environment)
	}
}

// Get is Lookup for startup code, where a missing environment is fatal
func Get() Environment {
	environment, err := Lookup()
	if err != nil {
		panic(err)
	}

	return environment
}
