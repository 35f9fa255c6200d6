// SPDX-License-Identifier: MPL-2.0

// Package tui renders static terminal output for the CLI: glamour markdown
// and lipgloss tables. Nothing here reads from the terminal.
package tui
