// Package main provides dojoctl, the command line companion of the server:
// table initialization, seed data, and the leaderboard job with its exports.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newApp(newEnv(os.Stdout)).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
