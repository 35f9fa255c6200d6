// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// maxConfigFileSize bounds config files read into memory.
const maxConfigFileSize = 1 << 20

// formatCUEError formats a CUE error with JSON path prefixes:
//
//	config.cue: ui.color_scheme: 3 errors in empty disjunction
func formatCUEError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		pathStr := formatPath(cueerrors.Path(e))
		msg := e.Error()

		// CUE sometimes includes the path in the message itself.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}
		if pathStr != "" {
			msg = pathStr + ": " + msg
		}
		lines = append(lines, msg)
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// formatPath converts ["default_options", "0"] to "default_options[0]".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			sb.WriteString("[" + part + "]")
		case i > 0:
			sb.WriteString("." + part)
		default:
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func checkFileSize(data []byte, filename string) error {
	if len(data) > maxConfigFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, len(data), maxConfigFileSize)
	}
	return nil
}
