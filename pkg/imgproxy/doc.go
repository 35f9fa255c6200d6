// SPDX-License-Identifier: MPL-2.0

// Package imgproxy builds signed imgproxy URLs.
//
// A Builder holds the service base URL and the signing secrets. Each URL it
// creates combines a source reference with an OptionSet and renders either the
// legacy positional path (/fit/300/200/sm/0/...) or the advanced path made of
// code:args segments (/w:300/h:200/...). The rendered path is signed with
// HMAC-SHA256 over salt and path, optionally truncated, and encoded as URL-safe
// base64 without padding.
//
//	b, err := imgproxy.NewBuilder("http://imgproxy", key, salt)
//	u, err := b.Build("local:///file.jpg", 300, 200)
//	u.UseAdvancedMode()
//	err = u.Options().WithQuality(80)
//	fmt.Println(u.String())
//
// Nothing in this package performs I/O. A Builder is safe for concurrent use;
// a URL and its OptionSet must not be mutated concurrently.
package imgproxy
