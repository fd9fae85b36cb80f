// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/lazyunit/lazyunit/cmd/lazyunit"

func main() {
	cmd.Execute()
}
