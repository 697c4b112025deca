// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "pomkit/cmd/pomkit"
)

func main() {
	cmd.Execute()
}
