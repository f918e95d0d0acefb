package main

import (
	"fmt"
	"os"

	"github.com/harrison/findfiles/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(cmd.ExpandVariadicFlags(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
