// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// pages shown when URL generation fails.
package issue
