package main

import (
	"os"

	"github.com/yacchi/mapskey/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(int(cmd.HandleError(err)))
	}
}
