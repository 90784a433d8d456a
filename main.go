package main

import (
	"fmt"
	"os"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
