package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gl-driver-switch/internal/cli"
	"github.com/arthur-debert/gl-driver-switch/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GL-DRIVER-SWITCH",
		Section: "1",
		Source:  "gl-driver-switch " + version.Version,
		Manual:  "gl-driver-switch manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
