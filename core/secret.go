package core

import "strings"

// Secret wraps a credential with protection against accidental logging.
// The underlying value is never exposed through String(), GoString(), or marshaling.
//
//	secret := NewSecret("AIza...")
//	fmt.Println(secret)        // prints: [REDACTED]
//	secret.Expose()            // returns: "AIza..."
type Secret struct {
	value string
}

// NewSecret creates a new Secret from a string value.
// Surrounding whitespace is dropped so a blank value counts as empty.
func NewSecret(value string) Secret {
	return Secret{value: strings.TrimSpace(value)}
}

// String returns a redacted placeholder.
func (s Secret) String() string {
	return "[REDACTED]"
}

// GoString returns a redacted placeholder for %#v formatting.
func (s Secret) GoString() string {
	return "core.Secret{[REDACTED]}"
}

// MarshalJSON returns a redacted JSON string.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// MarshalText returns a redacted text representation (covers YAML too).
func (s Secret) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// Expose returns the actual secret value.
// Use this only where the value is sent to the service.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty returns true if the secret value is empty.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
