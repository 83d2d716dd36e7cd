// Package main is the entry point for the pitcrew CLI application.
package main

import (
	"log"

	"github.com/frckit/pitcrew/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
