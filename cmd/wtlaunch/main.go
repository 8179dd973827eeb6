// cmd/wtlaunch/main.go
//
// Entry point for wtlaunch. Running it without a subcommand opens the
// profile picker; list, open and path are there for scripts.

package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
