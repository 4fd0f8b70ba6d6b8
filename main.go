// Hushbook - a password-gated local contact and place keeper.

package main

import (
	"os"

	"github.com/hushbook/hushbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
