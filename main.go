// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/imgurl/imgurl/cmd/imgurl"

func main() {
	cmd.Execute()
}
