// SPDX-License-Identifier: MPL-2.0

package types

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestHexSecretDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   HexSecret
		want    []byte
		wantErr bool
	}{
		{name: "empty is unset", value: "", want: nil},
		{name: "lowercase", value: "deadbeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "uppercase", value: "DEADBEEF", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "odd length", value: "abc", wantErr: true},
		{name: "non hex characters", value: "zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.value.Decode()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("HexSecret(%q).Decode() returned nil error", tt.value)
				}
				if !errors.Is(err, ErrInvalidHexSecret) {
					t.Errorf("error does not wrap ErrInvalidHexSecret: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexSecret(%q).Decode() error = %v", tt.value, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("HexSecret(%q).Decode() = %x, want %x", tt.value, got, tt.want)
			}
		})
	}
}

func TestInvalidHexSecretError(t *testing.T) {
	t.Parallel()

	err := HexSecret("not-a-secret").Validate()
	if err == nil {
		t.Fatal("Validate() returned nil for invalid secret")
	}

	var hexErr *InvalidHexSecretError
	if !errors.As(err, &hexErr) {
		t.Fatalf("errors.As(*InvalidHexSecretError) = false for %T", err)
	}
	if hexErr.Length != len("not-a-secret") {
		t.Errorf("Length = %d, want %d", hexErr.Length, len("not-a-secret"))
	}
	var invalidByte hex.InvalidByteError
	if !errors.As(err, &invalidByte) {
		t.Errorf("error does not expose hex.InvalidByteError: %v", err)
	}
	if strings.Contains(err.Error(), "not-a-secret") {
		t.Errorf("error message leaks the secret: %q", err.Error())
	}
}

func TestHexSecretString(t *testing.T) {
	t.Parallel()

	if got := HexSecret("").String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
	if got := HexSecret("deadbeef").String(); strings.Contains(got, "dead") {
		t.Errorf("String() = %q leaks the secret", got)
	}
}
