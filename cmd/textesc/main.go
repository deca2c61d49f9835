package main

import (
	"os"

	"github.com/commonkit/lang/cmd/textesc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
