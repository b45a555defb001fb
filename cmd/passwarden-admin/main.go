package main

import (
	"os"

	"passwarden/config"
)

func main() {
	if err := NewRootCmd(config.NewWithFlags).Execute(); err != nil {
		os.Exit(1)
	}
}
