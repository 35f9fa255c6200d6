// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/imgurl/imgurl/pkg/imgproxy"
	"github.com/imgurl/imgurl/pkg/types"
)

var allIds = []Id{
	InvalidSecretId,
	SecretsNotConfiguredId,
	UnknownOptionCodeId,
	InvalidOptionId,
	InvalidGravityId,
	InvalidModeId,
	InvalidSourceEncodingId,
	InvalidSignatureSizeId,
	MissingSourceId,
	ConfigLoadFailedId,
}

func TestIssuesMapCompleteness(t *testing.T) {
	t.Parallel()

	if InvalidSecretId != 1 {
		t.Errorf("InvalidSecretId = %d, want 1", InvalidSecretId)
	}
	if len(Values()) != len(allIds) {
		t.Errorf("Values() has %d issues, want %d", len(Values()), len(allIds))
	}
	for _, id := range allIds {
		i := Get(id)
		if i == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if i.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, i.Id())
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no message", id)
		}
	}
	if Get(Id(999)) != nil {
		t.Error("Get(999) should return nil")
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	t.Parallel()

	i := Get(InvalidSignatureSizeId)
	links := i.DocLinks()
	if len(links) == 0 {
		t.Fatal("DocLinks() is empty")
	}
	links[0] = "modified"
	if i.DocLinks()[0] == "modified" {
		t.Error("DocLinks() should return a clone")
	}
	if ext := i.ExtLinks(); len(ext) != 0 {
		t.Errorf("ExtLinks() = %v, want none", ext)
	}
}

// Tests that swap the package-level render func must not run in parallel.
func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, _ string) (string, error) {
		return in, nil
	}

	rendered, err := Get(InvalidSecretId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "Invalid signing secret") {
		t.Error("Render() output should contain the title")
	}
	if !strings.Contains(rendered, "## See also:") || !strings.Contains(rendered, "signing_url") {
		t.Errorf("Render() output should list the doc links:\n%s", rendered)
	}

	rendered, err = Get(MissingSourceId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not add a See also section")
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	t.Parallel()

	for _, i := range Values() {
		out, err := i.Render("notty")
		if err != nil {
			t.Errorf("issue %d: Render() error: %v", i.Id(), err)
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d: Render() is empty", i.Id())
		}
	}
}

func TestForError(t *testing.T) {
	t.Parallel()

	s := imgproxy.NewOptionSet()
	_, secretErr := types.HexSecret("xyz").Decode()

	tests := []struct {
		name string
		err  error
		want Id
	}{
		{"hex secret", secretErr, InvalidSecretId},
		{"wrapped hex secret", fmt.Errorf("key: %w", secretErr), InvalidSecretId},
		{"unknown code", s.Apply("zoom:2"), UnknownOptionCodeId},
		{"option range", s.WithQuality(500), InvalidOptionId},
		{"gravity type inside option", s.WithGravity("up"), InvalidGravityId},
		{"gravity coordinates", s.WithGravity(imgproxy.GravityFocusPoint, 2, 2), InvalidGravityId},
		{"mode", imgproxy.Mode("fancy").Validate(), InvalidModeId},
		{"source encoding", imgproxy.SourceEncoding("hex").Validate(), InvalidSourceEncodingId},
		{"signature size", imgproxy.SignatureSize(64).Validate(), InvalidSignatureSizeId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatal("test setup produced a nil error")
			}
			got := ForError(tt.err)
			if got == nil || got.Id() != tt.want {
				t.Errorf("ForError(%v) = %v, want issue %d", tt.err, got, tt.want)
			}
		})
	}

	if ForError(nil) != nil {
		t.Error("ForError(nil) should return nil")
	}
	if ForError(errors.New("unrelated")) != nil {
		t.Error("ForError(unrelated) should return nil")
	}
}
