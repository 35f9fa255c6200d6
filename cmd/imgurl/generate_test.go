// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/imgurl/imgurl/internal/config"
	"github.com/imgurl/imgurl/internal/issue"
	"github.com/imgurl/imgurl/pkg/imgproxy"
	"github.com/imgurl/imgurl/pkg/types"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		args   []string
		want   string
	}{
		{
			name: "legacy by default",
			args: []string{"-W", "300", "-H", "200", "local:///file.jpg"},
			want: "http://imgproxy/-o6q11Q3DrNtMnCz_bZQzPdDxrGgx9BfVqQBbndAOwo/fit/300/200/sm/0/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name: "advanced flag",
			args: []string{"--advanced", "--width", "300", "--height", "200", "local:///file.jpg"},
			want: "http://imgproxy/FF5I9WSLqeGP7H7REezXC8lYm46vdk9G3KCgqo-36hY/w:300/h:200/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name: "advanced mode flag",
			args: []string{"--mode", "advanced", "-W", "300", "-H", "200", "local:///file.jpg"},
			want: "http://imgproxy/FF5I9WSLqeGP7H7REezXC8lYm46vdk9G3KCgqo-36hY/w:300/h:200/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name:   "advanced from config",
			modify: func(c *config.Config) { c.Mode = imgproxy.ModeAdvanced },
			args:   []string{"-W", "300", "-H", "200", "local:///file.jpg"},
			want:   "http://imgproxy/FF5I9WSLqeGP7H7REezXC8lYm46vdk9G3KCgqo-36hY/w:300/h:200/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name: "source flag",
			args: []string{"--base", "http://imgproxy", "--source", "local:///file.jpg", "--width", "300", "--height", "200"},
			want: "http://imgproxy/-o6q11Q3DrNtMnCz_bZQzPdDxrGgx9BfVqQBbndAOwo/fit/300/200/sm/0/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name: "source flag with positional option",
			args: []string{"--advanced", "--source", "local:///file.jpg", "-W", "300", "-H", "200", "q:80"},
			want: "http://imgproxy/R3EAEcANZ71sm2WkBrBFlj39UUdcznFNltFAt9DVhq0/w:300/h:200/q:80/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name: "truncated signature",
			args: []string{"--signature-size", "8", "-W", "300", "-H", "200", "local:///file.jpg"},
			want: "http://imgproxy/-o6q11Q3DrM/fit/300/200/sm/0/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name: "plain source with option flag",
			args: []string{"--advanced", "-W", "300", "-H", "200", "--plain", "--ext", ".webp", "-o", "q:80", "http://example.com/image.png?v=2"},
			want: "http://imgproxy/ohVq24bgyG2CCzKEc1bN1TyFZSBYO9HxT1t5E7JtYqI/w:300/h:200/q:80/plain/http://example.com/image.png?v=2@webp",
		},
		{
			name: "positional option",
			args: []string{"--advanced", "-W", "300", "-H", "200", "--plain", "-e", "webp", "http://example.com/image.png?v=2", "quality:80"},
			want: "http://imgproxy/ohVq24bgyG2CCzKEc1bN1TyFZSBYO9HxT1t5E7JtYqI/w:300/h:200/q:80/plain/http://example.com/image.png?v=2@webp",
		},
		{
			name:   "default options",
			modify: func(c *config.Config) { c.Mode, c.DefaultOptions = imgproxy.ModeAdvanced, []string{"q:80"} },
			args:   []string{"-W", "300", "-H", "200", "--plain", "-e", "webp", "http://example.com/image.png?v=2"},
			want:   "http://imgproxy/ohVq24bgyG2CCzKEc1bN1TyFZSBYO9HxT1t5E7JtYqI/w:300/h:200/q:80/plain/http://example.com/image.png?v=2@webp",
		},
		{
			name: "path only",
			args: []string{"--path-only", "-W", "300", "-H", "200", "local:///file.jpg"},
			want: "/-o6q11Q3DrNtMnCz_bZQzPdDxrGgx9BfVqQBbndAOwo/fit/300/200/sm/0/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name: "base url flag",
			args: []string{"--advanced", "--base-url", "https://img.example.com", "--path-only=false", "-W", "300", "-H", "200", "local:///file.jpg"},
			want: "https://img.example.com/FF5I9WSLqeGP7H7REezXC8lYm46vdk9G3KCgqo-36hY/w:300/h:200/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name:   "insecure",
			modify: func(c *config.Config) { c.Key, c.Salt = "", "" },
			args:   []string{"-W", "300", "-H", "200", "local:///file.jpg"},
			want:   "http://imgproxy/insecure/fit/300/200/sm/0/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
		{
			name:   "secrets from flags",
			modify: func(c *config.Config) { c.Key, c.Salt = "", "" },
			args:   []string{"--advanced", "--key", testKey, "--salt", testSalt, "-W", "300", "-H", "200", "local:///file.jpg"},
			want:   "http://imgproxy/FF5I9WSLqeGP7H7REezXC8lYm46vdk9G3KCgqo-36hY/w:300/h:200/bG9jYWw6Ly8vZmlsZS5qcGc.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			if tt.modify != nil {
				tt.modify(cfg)
			}
			res := runCommand(t, &stubProvider{cfg: cfg}, append([]string{"generate"}, tt.args...)...)
			if res.err != nil {
				t.Fatalf("generate error = %v\nstderr: %s", res.err, res.stderr)
			}
			if res.stdout != tt.want {
				t.Errorf("generate output = %q, want %q", res.stdout, tt.want)
			}
		})
	}
}

func TestGenerate_InsecureWarning(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Salt = ""
	res := runCommand(t, &stubProvider{cfg: cfg}, "generate", "local:///file.jpg")
	if res.err != nil {
		t.Fatalf("generate error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "/insecure/") {
		t.Errorf("output = %q, want an insecure URL", res.stdout)
	}
	if !strings.Contains(res.stderr, "insecure") {
		t.Errorf("stderr = %q, want an insecure warning", res.stderr)
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		code     types.ExitCode
		sentinel error
	}{
		{"unknown option", []string{"local:///a.jpg", "zoom:2"}, types.ExitUsage, imgproxy.ErrInvalidCode},
		{"invalid option value", []string{"local:///a.jpg", "q:101"}, types.ExitUsage, imgproxy.ErrInvalidOption},
		{"invalid option flag", []string{"-o", "g:nowhere", "local:///a.jpg"}, types.ExitUsage, imgproxy.ErrInvalidGravityType},
		{"negative width", []string{"-W", "-1", "local:///a.jpg"}, types.ExitUsage, imgproxy.ErrInvalidOption},
		{"bad mode", []string{"--mode", "fancy", "local:///a.jpg"}, types.ExitUsage, imgproxy.ErrInvalidMode},
		{"bad key", []string{"--key", "xyz", "local:///a.jpg"}, types.ExitUsage, types.ErrInvalidHexSecret},
		{"bad signature size", []string{"--signature-size", "33", "local:///a.jpg"}, types.ExitUsage, imgproxy.ErrInvalidSignatureSize},
		{"blank source", []string{" "}, types.ExitUsage, errMissingSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCommand(t, &stubProvider{cfg: testConfig()}, append([]string{"generate"}, tt.args...)...)
			if res.err == nil {
				t.Fatalf("generate succeeded with output %q", res.stdout)
			}

			var exitErr *ExitError
			if !errors.As(res.err, &exitErr) {
				t.Fatalf("error = %v, want *ExitError", res.err)
			}
			if exitErr.Code != tt.code {
				t.Errorf("exit code = %d, want %d", exitErr.Code, tt.code)
			}
			if !errors.Is(res.err, tt.sentinel) {
				t.Errorf("error = %v, want errors.Is %v", res.err, tt.sentinel)
			}
			var ae *issue.ActionableError
			if !errors.As(res.err, &ae) {
				t.Errorf("error = %v, want an *issue.ActionableError", res.err)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want nothing on failure", res.stdout)
			}
		})
	}
}

func TestGenerate_ConfigLoadFailure(t *testing.T) {
	t.Parallel()

	loadErr := issue.NewErrorContext().
		WithOperation("load configuration").
		Wrap(config.ErrInvalidConfig).
		Build()
	res := runCommand(t, &stubProvider{err: loadErr}, "generate", "local:///a.jpg")

	var exitErr *ExitError
	if !errors.As(res.err, &exitErr) || exitErr.Code != types.ExitFailure {
		t.Fatalf("error = %v, want an ExitError with code %d", res.err, types.ExitFailure)
	}
	if !errors.Is(res.err, config.ErrInvalidConfig) {
		t.Errorf("error = %v, want errors.Is ErrInvalidConfig", res.err)
	}
}

func TestGenerate_VerboseRendersIssue(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.UI.ColorScheme = config.ColorSchemeDark
	res := runCommand(t, &stubProvider{cfg: cfg}, "--verbose", "generate", "local:///a.jpg", "zoom:2")
	if res.err == nil {
		t.Fatal("generate succeeded with an unknown option")
	}
	if !strings.Contains(res.stderr, "Unknown") {
		t.Errorf("stderr should contain the unknown option help page, got:\n%s", res.stderr)
	}

	res = runCommand(t, &stubProvider{cfg: cfg}, "generate", "local:///a.jpg", "zoom:2")
	if strings.Contains(res.stderr, "Unknown") {
		t.Errorf("help page should only be shown in verbose mode, got:\n%s", res.stderr)
	}
}

func TestGenerate_MissingArgument(t *testing.T) {
	t.Parallel()

	res := runCommand(t, &stubProvider{cfg: testConfig()}, "generate")
	if res.err == nil {
		t.Fatal("generate succeeded without a source")
	}
	var exitErr *ExitError
	if !errors.As(res.err, &exitErr) || exitErr.Code != types.ExitUsage {
		t.Errorf("error = %v, want an ExitError with code %d", res.err, types.ExitUsage)
	}
	if !errors.Is(res.err, errMissingSource) {
		t.Errorf("error = %v, want errors.Is errMissingSource", res.err)
	}
}

func TestGenerate_ConflictingFlags(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--advanced", "--mode", "legacy", "local:///a.jpg"},
		{"--base", "http://a", "--base-url", "http://b", "local:///a.jpg"},
	} {
		res := runCommand(t, &stubProvider{cfg: testConfig()}, append([]string{"generate"}, args...)...)
		if res.err == nil {
			t.Errorf("generate %v succeeded with output %q", args, res.stdout)
		}
	}
}

func TestGenerate_LegacyWarnsAboutUnrenderedOptions(t *testing.T) {
	t.Parallel()

	res := runCommand(t, &stubProvider{cfg: testConfig()}, "generate", "-W", "300", "-H", "200", "local:///file.jpg", "rt:fill", "q:80")
	if res.err != nil {
		t.Fatalf("generate error = %v", res.err)
	}
	want := "http://imgproxy/vwmI8TuPdcfAw0lsyr7mY6pxIRIpOrErtCZVGJii1w0/fill/300/200/sm/0/bG9jYWw6Ly8vZmlsZS5qcGc.jpg"
	if res.stdout != want {
		t.Errorf("generate output = %q, want %q", res.stdout, want)
	}
	if !strings.Contains(res.stderr, "--advanced") {
		t.Errorf("stderr = %q, want a hint to use --advanced", res.stderr)
	}

	res = runCommand(t, &stubProvider{cfg: testConfig()}, "generate", "--advanced", "local:///file.jpg", "q:80")
	if strings.Contains(res.stderr, "--advanced") {
		t.Errorf("advanced mode should not warn, got:\n%s", res.stderr)
	}
}
