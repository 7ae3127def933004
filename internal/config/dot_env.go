package config

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad forcefully overrides ENV variables through **a maybe available** .env file.
//
// This function will always log a warning if the file is missing but never panics.
// Use DotEnvLoad to react to a missing or invalid file yourself.
func DotEnvTryLoad(absolutePathToEnvFile string, setEnvFn func(key string, value string) error) {
	err := DotEnvLoad(absolutePathToEnvFile, setEnvFn)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("envFile", absolutePathToEnvFile).Msg(".env file not found, skipping")
			return
		}

		log.Warn().Err(err).Str("envFile", absolutePathToEnvFile).Msg("Failed to load .env file")
	}
}

// DotEnvLoad forcefully overrides ENV variables through the supplied .env file.
//
// Use t.Setenv as setEnvFn within tests to keep the process global os.Env untouched.
func DotEnvLoad(absolutePathToEnvFile string, setEnvFn func(key string, value string) error) error {
	file, err := os.Open(absolutePathToEnvFile)
	if err != nil {
		return err
	}
	defer file.Close()

	envs, err := gotenv.StrictParse(file)
	if err != nil {
		return err
	}

	for key, value := range envs {
		if err := setEnvFn(key, value); err != nil {
			return err
		}
	}

	return nil
}
