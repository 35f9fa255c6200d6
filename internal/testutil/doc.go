// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that run a real imgproxy
// container through testcontainers.
//
// Container tests are skipped in -short mode and when no Docker or Podman
// provider is reachable, so the default test run stays hermetic.
package testutil
