package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/petal-labs/promptrun/core"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// EnvLookup returns a lookup over the process environment backed by the
// variables in the dotenv file at path. Process variables win over the file,
// matching godotenv.Load. A missing file is not an error.
//
// The process environment is not modified.
func EnvLookup(path string) (core.LookupFunc, error) {
	fileVars, err := readDotEnv(path)
	if err != nil {
		return nil, err
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return vars, err
}
