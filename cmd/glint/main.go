// Command glint is the scaffolding CLI for glint demo projects.
package main

import (
	"os"

	"github.com/nextcore/glint/cmd/glint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
