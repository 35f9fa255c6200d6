// SPDX-License-Identifier: MPL-2.0

// Package config handles imgurl configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/imgurl/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/imgurl/config.cue on macOS, %APPDATA%\imgurl\config.cue
// on Windows), then overridden by environment variables. The signing secrets fall back
// to the variables imgproxy itself reads (IMGPROXY_KEY, IMGPROXY_SALT and
// IMGPROXY_SIGNATURE_SIZE), so a shell configured for the server can generate URLs
// without a config file.
//
// Config files are validated against an embedded CUE schema (config_schema.cue).
package config
