// Command zenohd runs the unicast receive pipeline as a standalone TCP
// peer.
package main

import (
	"fmt"
	"os"

	"github.com/codebot/zenoh/cmd/zenohd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
