// Command calc evaluates arithmetic expressions from the command line or runs
// an interactive calculator in the terminal.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
