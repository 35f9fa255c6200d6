// SPDX-License-Identifier: MPL-2.0

package types

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidHexSecret is the sentinel error wrapped by InvalidHexSecretError.
var ErrInvalidHexSecret = errors.New("invalid hex secret")

type (
	// HexSecret is a signing key or salt written as hexadecimal text.
	// The empty HexSecret means "not configured" and is valid.
	HexSecret string

	// InvalidHexSecretError is returned when a HexSecret does not decode as
	// hexadecimal. The secret itself is never included in the message.
	InvalidHexSecretError struct {
		Length int
		Cause  error
	}
)

// Error implements the error interface.
func (e *InvalidHexSecretError) Error() string {
	return fmt.Sprintf("invalid hex secret (%d characters): %v", e.Length, e.Cause)
}

// Unwrap returns both the sentinel and the decoding failure.
func (e *InvalidHexSecretError) Unwrap() []error {
	return []error{ErrInvalidHexSecret, e.Cause}
}

// IsEmpty reports whether the secret is unset.
func (s HexSecret) IsEmpty() bool { return s == "" }

// Validate returns an error if the secret is set but is not valid hex.
func (s HexSecret) Validate() error {
	_, err := s.Decode()
	return err
}

// Decode returns the raw bytes of the secret. An empty secret decodes to nil.
func (s HexSecret) Decode() ([]byte, error) {
	if s.IsEmpty() {
		return nil, nil
	}
	b, err := hex.DecodeString(string(s))
	if err != nil {
		return nil, &InvalidHexSecretError{Length: len(s), Cause: err}
	}
	return b, nil
}

// String returns the secret masked, so it can be logged safely.
func (s HexSecret) String() string {
	if s.IsEmpty() {
		return ""
	}
	return "********"
}
