// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportedConstantsAreDocumented(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}
			for _, spec := range gen.Specs {
				vs := spec.(*ast.ValueSpec)
				documented := vs.Doc != nil || (!gen.Lparen.IsValid() && gen.Doc != nil)
				for _, ident := range vs.Names {
					if ident.IsExported() && !documented {
						t.Errorf("%s: exported constant %s has no doc comment", fset.Position(ident.Pos()), ident.Name)
					}
				}
			}
		}
	}
}
