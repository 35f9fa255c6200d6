// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for imgurl.
//
// The command tree is built by NewRootCommand around an App, which carries the
// configuration provider and output streams so tests can run commands
// in-process. Execute is the production entry point used by main.
package cmd
