// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// MaxSignatureSize is the length of an untruncated HMAC-SHA256 digest.
const MaxSignatureSize = sha256.Size

const insecureSignature = "insecure"

// ErrInvalidSignatureSize is the sentinel error wrapped by InvalidSignatureSizeError.
var ErrInvalidSignatureSize = errors.New("invalid signature size")

type (
	// SignatureSize is the number of digest bytes kept in a signature.
	// Zero keeps the whole digest.
	SignatureSize int

	// InvalidSignatureSizeError is returned when a SignatureSize is outside 0-32.
	InvalidSignatureSizeError struct {
		Value SignatureSize
	}
)

// Error implements the error interface.
func (e *InvalidSignatureSizeError) Error() string {
	return fmt.Sprintf("invalid signature size %d (must be in range 0-%d)", e.Value, MaxSignatureSize)
}

// Unwrap returns ErrInvalidSignatureSize so callers can use errors.Is for programmatic detection.
func (e *InvalidSignatureSizeError) Unwrap() error { return ErrInvalidSignatureSize }

// Validate returns an error if the size is outside 0-32.
func (n SignatureSize) Validate() error {
	if n < 0 || n > MaxSignatureSize {
		return &InvalidSignatureSizeError{Value: n}
	}
	return nil
}

// Sign returns the URL-safe, unpadded base64 HMAC-SHA256 of salt followed by
// path, keyed with key. A positive size keeps only the first size bytes of the
// digest.
func Sign(key, salt []byte, size int, path string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(salt)
	mac.Write([]byte(path))
	digest := mac.Sum(nil)
	if size > 0 && size < len(digest) {
		digest = digest[:size]
	}
	return base64.RawURLEncoding.EncodeToString(digest)
}
