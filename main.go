package main

import (
	"os"

	"github.com/urbanlogix/tripdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
