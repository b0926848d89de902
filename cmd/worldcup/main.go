package main

import (
	"fmt"
	"os"

	"worldcup-stats-service/internal/cli"
)

var appVersion = "dev"

func main() {
	if err := cli.NewRootCmd(appVersion).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
