// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// ImgproxyImage is the container image the integration tests run.
	ImgproxyImage = "ghcr.io/imgproxy/imgproxy:latest"

	// TestImagePath is the path of the fixture image, relative to the
	// container's local filesystem root. Reference it as local:///test.png.
	TestImagePath = "/test.png"
)

// RequireImgproxy skips t in -short mode or when no container provider is
// available.
func RequireImgproxy(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !containerProviderAvailable() {
		t.Skip("skipping imgproxy integration tests: testcontainers provider not available")
	}
}

// containerProviderAvailable safely checks if testcontainers can be used.
func containerProviderAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

// StartImgproxy runs imgproxy with the given hex secrets and a local
// filesystem root holding TestImagePath, and returns its base URL. The
// container is removed when t finishes. Startup holds a ContainerSemaphore slot.
func StartImgproxy(t *testing.T, key, salt string) string {
	t.Helper()

	sem := ContainerSemaphore()
	sem <- struct{}{}
	defer func() { <-sem }()

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        ImgproxyImage,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"IMGPROXY_KEY":                   key,
			"IMGPROXY_SALT":                  salt,
			"IMGPROXY_LOCAL_FILESYSTEM_ROOT": "/images",
		},
		Files: []testcontainers.ContainerFile{{
			Reader:            bytes.NewReader(testPNG(t)),
			ContainerFilePath: "/images" + TestImagePath,
			FileMode:          0o644,
		}},
		WaitingFor: wait.ForHTTP("/health").WithPort("8080/tcp").WithStartupTimeout(2 * time.Minute),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, c)
	if err != nil {
		t.Fatalf("start imgproxy: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := c.MappedPort(ctx, "8080/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}
	return "http://" + host + ":" + port.Port()
}

// FetchStatus GETs rawURL and returns the response status code.
func FetchStatus(t *testing.T, rawURL string) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", rawURL, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// testPNG returns a small gradient PNG.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := range 64 {
		for y := range 48 {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
