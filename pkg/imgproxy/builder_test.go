// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"testing"

	"github.com/imgurl/imgurl/pkg/types"
)

func TestNewBuilderSecurity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key, salt  string
		wantSecure bool
	}{
		{name: "key and salt", key: testKey, salt: testSalt, wantSecure: true},
		{name: "no secrets", wantSecure: false},
		{name: "key only", key: testKey, wantSecure: false},
		{name: "salt only", salt: testSalt, wantSecure: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := NewBuilder("http://imgproxy", tt.key, tt.salt)
			if err != nil {
				t.Fatalf("NewBuilder() error = %v", err)
			}
			if b.IsSecure() != tt.wantSecure {
				t.Errorf("IsSecure() = %v, want %v", b.IsSecure(), tt.wantSecure)
			}
			if !tt.wantSecure && b.Signature(legacyPath) != "insecure" {
				t.Errorf("Signature() = %q, want %q", b.Signature(legacyPath), "insecure")
			}
		})
	}
}

func TestNewBuilderRejectsInvalidHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key, salt string
	}{
		{name: "bad key", key: "xyz", salt: testSalt},
		{name: "bad salt", key: testKey, salt: "0g"},
		{name: "odd length key", key: "abc", salt: testSalt},
		{name: "bad key without salt", key: "not hex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := NewBuilder("http://imgproxy", tt.key, tt.salt)
			if err == nil {
				t.Fatalf("NewBuilder() = %v, want error", b)
			}
			if !errors.Is(err, types.ErrInvalidHexSecret) {
				t.Errorf("error does not wrap types.ErrInvalidHexSecret: %v", err)
			}
		})
	}
}

func TestNewBuilderOptions(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder("http://imgproxy", testKey, testSalt,
		WithSignatureSize(8),
		WithDefaultMode(ModeAdvanced),
		WithDefaultSourceEncoding(SourcePlain),
	)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	if b.SignatureSize() != 8 {
		t.Errorf("SignatureSize() = %d, want 8", b.SignatureSize())
	}

	u, err := b.Build("local:///file.jpg", 300, 200)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if u.Mode() != ModeAdvanced {
		t.Errorf("Mode() = %q, want %q", u.Mode(), ModeAdvanced)
	}
	if u.SourceEncoding() != SourcePlain {
		t.Errorf("SourceEncoding() = %q, want %q", u.SourceEncoding(), SourcePlain)
	}
}

func TestNewBuilderRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opt    BuilderOption
		target error
	}{
		{name: "negative signature size", opt: WithSignatureSize(-1), target: ErrInvalidSignatureSize},
		{name: "oversized signature", opt: WithSignatureSize(33), target: ErrInvalidSignatureSize},
		{name: "unknown mode", opt: WithDefaultMode("fancy"), target: ErrInvalidMode},
		{name: "unknown encoding", opt: WithDefaultSourceEncoding("hex"), target: ErrInvalidSourceEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBuilder("http://imgproxy", testKey, testSalt, tt.opt)
			if !errors.Is(err, tt.target) {
				t.Errorf("NewBuilder() error = %v, want %v", err, tt.target)
			}
		})
	}
}
