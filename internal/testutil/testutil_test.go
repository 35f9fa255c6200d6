// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"bytes"
	"image/png"
	"runtime"
	"testing"
)

func TestContainerParallelism(t *testing.T) {
	// Not parallel: uses t.Setenv.

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"override", "5", 5},
		{"zero falls back", "0", min(runtime.GOMAXPROCS(0), 2)},
		{"garbage falls back", "many", min(runtime.GOMAXPROCS(0), 2)},
		{"unset", "", min(runtime.GOMAXPROCS(0), 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("IMGURL_TEST_CONTAINER_PARALLEL", tt.value)
			if got := containerParallelism(); got != tt.want {
				t.Errorf("containerParallelism() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContainerSemaphore_IsShared(t *testing.T) {
	t.Parallel()

	if ContainerSemaphore() != ContainerSemaphore() {
		t.Error("ContainerSemaphore() should return the same channel on every call")
	}
	if cap(ContainerSemaphore()) < 1 {
		t.Error("ContainerSemaphore() capacity must be positive")
	}
}

func TestPNGFixture(t *testing.T) {
	t.Parallel()

	img, err := png.Decode(bytes.NewReader(testPNG(t)))
	if err != nil {
		t.Fatalf("fixture is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("fixture size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}
