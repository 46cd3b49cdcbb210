// Command tsjournal inspects emission journals written by journal.SQLiteStore.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
