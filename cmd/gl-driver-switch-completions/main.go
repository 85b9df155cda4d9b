package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/gl-driver-switch/internal/cli"
)

// Completion scripts written for packaging, keyed by the file name each
// shell looks for
var scripts = map[string]func(path string) error{
	"gl-driver-switch.bash": func(path string) error {
		return cli.NewRootCmd().GenBashCompletionFileV2(path, true)
	},
	"_gl-driver-switch": func(path string) error {
		return cli.NewRootCmd().GenZshCompletionFile(path)
	},
	"gl-driver-switch.fish": func(path string) error {
		return cli.NewRootCmd().GenFishCompletionFile(path, true)
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}

	outDir := os.Args[1]
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	for name, gen := range scripts {
		if err := gen(filepath.Join(outDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}
