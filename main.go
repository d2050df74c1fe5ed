// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/invowk/sigcli/cmd/sigcalc"

func main() {
	cmd.Execute()
}
