package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-easel/easel/cmd/easel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Unknown-command errors already printed help and a message.
		if !strings.HasPrefix(err.Error(), "unknown command") {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
