// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/descent/cmd/descent/cmd"
)

func main() {
	cmd.Execute()
}
