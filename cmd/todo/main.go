package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emrekaya/todo/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	file := flag.String("file", "", "path to the todos file (default ./todos.json)")
	theme := flag.String("theme", "classic", "output theme: classic, neon or mono")
	groupPending := flag.Bool("group", false, "static listing grouped by pending/done")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		File:  *file,
		Theme: *theme,
		Group: *groupPending,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
