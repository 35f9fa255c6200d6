// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	entries := Catalog()
	if len(entries) != 39 {
		t.Fatalf("Catalog() has %d entries, want 39", len(entries))
	}

	seenCodes := make(map[Code]bool)
	seenNames := make(map[string]bool)
	for _, e := range entries {
		if seenCodes[e.Code] {
			t.Errorf("duplicate code %q", e.Code)
		}
		if seenNames[e.Name] {
			t.Errorf("duplicate name %q", e.Name)
		}
		seenCodes[e.Code], seenNames[e.Name] = true, true

		if e.Args == "" || e.Rule == "" {
			t.Errorf("entry %q is missing its synopsis or rule", e.Code)
		}
		if err := e.Code.Validate(); err != nil {
			t.Errorf("%q.Validate() = %v", e.Code, err)
		}
		if got, ok := LookupCode(e.Code); !ok || got != e {
			t.Errorf("LookupCode(%q) = %+v, %v", e.Code, got, ok)
		}
		if got := e.Code.Name(); got != e.Name {
			t.Errorf("%q.Name() = %q, want %q", e.Code, got, e.Name)
		}
	}

	entries[0].Name = "mutated"
	if Catalog()[0].Name == "mutated" {
		t.Error("Catalog() exposes the package catalog")
	}
}

func TestCodeValidate(t *testing.T) {
	t.Parallel()

	err := Code("zoom").Validate()
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("Validate() error = %v, want ErrInvalidCode", err)
	}
	if got := Code("zoom").Name(); got != "zoom" {
		t.Errorf("Name() of unknown code = %q, want %q", got, "zoom")
	}
	if _, ok := LookupCode("zoom"); ok {
		t.Error("LookupCode(zoom) reported a match")
	}
}
