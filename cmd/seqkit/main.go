// Command seqkit runs a configured recipe of sequence combinators over
// integers given on the command line or stdin.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
