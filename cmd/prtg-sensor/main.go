package main

import (
	"os"

	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/logging"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	log := logging.NewLogrus(level, os.Stderr).Get("Main")

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
