// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"encoding/hex"
	"net/http"
	"strings"
	"testing"

	"github.com/imgurl/imgurl/internal/testutil"
)

// TestImgproxy_Integration checks generated URLs against a real imgproxy.
// It requires Docker or Podman.
func TestImgproxy_Integration(t *testing.T) {
	testutil.RequireImgproxy(t)

	base := testutil.StartImgproxy(t, testKey, testSalt)
	b, err := NewBuilder(base, testKey, testSalt)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}

	build := func(t *testing.T, mode Mode, enc SourceEncoding) string {
		t.Helper()
		u, err := NewURL(b, LocalScheme+testutil.TestImagePath, 32, 24)
		if err != nil {
			t.Fatalf("NewURL() error: %v", err)
		}
		must(t, u.SetMode(mode), u.SetSourceEncoding(enc), u.Options().WithQuality(80))
		u.SetExtension("jpg")
		return u.String()
	}

	for _, mode := range []Mode{ModeAdvanced, ModeLegacy} {
		for _, enc := range []SourceEncoding{SourceEncoded, SourcePlain} {
			t.Run(string(mode)+"/"+string(enc), func(t *testing.T) {
				signed := build(t, mode, enc)
				if got := testutil.FetchStatus(t, signed); got != http.StatusOK {
					t.Errorf("GET %s = %d, want %d", signed, got, http.StatusOK)
				}
			})
		}
	}

	t.Run("truncated signature", func(t *testing.T) {
		short, err := NewBuilder(base, testKey, testSalt, WithSignatureSize(8))
		if err != nil {
			t.Fatalf("NewBuilder() error: %v", err)
		}
		u, err := short.Build(LocalScheme+testutil.TestImagePath, 32, 24)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		// The server keeps the full signature size.
		if got := testutil.FetchStatus(t, u.String()); got != http.StatusForbidden {
			t.Errorf("GET %s = %d, want %d", u.String(), got, http.StatusForbidden)
		}
	})

	t.Run("tampered", func(t *testing.T) {
		signed := build(t, ModeAdvanced, SourceEncoded)
		tampered := strings.Replace(signed, "/q:80/", "/q:81/", 1)
		if got := testutil.FetchStatus(t, tampered); got != http.StatusForbidden {
			t.Errorf("GET %s = %d, want %d", tampered, got, http.StatusForbidden)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewBuilder(base, hex.EncodeToString([]byte("another-key")), testSalt)
		if err != nil {
			t.Fatalf("NewBuilder() error: %v", err)
		}
		u, err := NewURL(other, LocalScheme+testutil.TestImagePath, 32, 24)
		if err != nil {
			t.Fatalf("NewURL() error: %v", err)
		}
		if got := testutil.FetchStatus(t, u.String()); got != http.StatusForbidden {
			t.Errorf("GET %s = %d, want %d", u.String(), got, http.StatusForbidden)
		}
	})
}
