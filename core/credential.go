package core

import "fmt"

// DefaultCredentialEnv is the environment variable holding the Gemini API key.
const DefaultCredentialEnv = "GEMINI_API_KEY"

// LookupFunc resolves a configuration variable, with the same contract as os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadCredential resolves the API key.
//
// The variable named envVar is read through lookup first. explicit is used only
// when the variable is unset or blank. If neither yields a value the returned
// error wraps ErrMissingCredential.
func LoadCredential(lookup LookupFunc, envVar, explicit string) (Secret, error) {
	if envVar == "" {
		envVar = DefaultCredentialEnv
	}

	if lookup != nil {
		if v, ok := lookup(envVar); ok {
			if s := NewSecret(v); !s.IsEmpty() {
				return s, nil
			}
		}
	}

	if s := NewSecret(explicit); !s.IsEmpty() {
		return s, nil
	}

	return Secret{}, fmt.Errorf("%w: %s not found in environment variables", ErrMissingCredential, envVar)
}
