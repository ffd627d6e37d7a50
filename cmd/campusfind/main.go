package main

import (
	"fmt"
	"os"

	"campusfind/internal/client/cli"
	"campusfind/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
