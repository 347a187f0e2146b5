package main

import (
	"os"

	_ "fastos/cmd"
	"fastos/cmd/root"
	"fastos/internal/config"
	"fastos/internal/logger"
)

func main() {
	// Server mode tees log output to stdout so the daemon is observable.
	isServerMode := len(os.Args) > 1 && os.Args[1] == "server"

	logger.InitLogger(&config.Config.Log, isServerMode)

	if err := root.RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
	os.Exit(0)
}
