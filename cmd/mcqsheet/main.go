// Command mcqsheet lays out, checks and exports multiple-choice exam sheets.
//
// Usage:
//
//	mcqsheet layout [-explanations] [-density d] project.json
//	mcqsheet dups [-threshold t] project.json
//	mcqsheet pdf -o sheet.pdf project.json
//	mcqsheet html -o sheet.html project.json
//	mcqsheet png [-page n] [-scale s] -o page.png project.json
//	mcqsheet import [-o project.json] [-lang eng] questions.txt|page.html|scan.png
//	mcqsheet save [-key k] project.json
//	mcqsheet load [-key k] -o project.json
//	mcqsheet list
//	mcqsheet delete -key k
//
// Configuration is read from the environment; see internal/config.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tsawler/mcqsheet/internal/config"
	"github.com/tsawler/mcqsheet/internal/logger"
)

type command struct {
	summary string
	run     func(app *app, args []string) error
}

var commands = map[string]command{
	"layout": {"print the page plan", runLayout},
	"dups":   {"list duplicate questions and choices", runDups},
	"pdf":    {"export the sheet as PDF", runPDF},
	"html":   {"export the sheet as an HTML preview", runHTML},
	"png":    {"render one page as PNG", runPNG},
	"import": {"extract questions from text, HTML or a scanned image", runImport},
	"save":   {"store a project in the local database", runSave},
	"load":   {"write a stored project to a file", runLoad},
	"list":   {"list stored projects", runList},
	"delete": {"remove a stored project", runDelete},
}

// app carries what every command shares.
type app struct {
	cfg *config.Config
	log *logger.Logger
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name := os.Args[1]
	if name == "-h" || name == "--help" || name == "help" {
		usage()
		return
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cmd.run(&app{cfg: cfg, log: log}, os.Args[2:]); err != nil {
		log.Error("command failed", "command", name, "error", err.Error())
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		log.Sync()
		os.Exit(1)
	}
}

func usage() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: mcqsheet <command> [flags] [args]\n\ncommands:\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  %-8s %s\n", n, commands[n].summary)
	}
	b.WriteString("\nRun 'mcqsheet <command> -h' for the flags of a command.\n")
	fmt.Fprint(os.Stderr, b.String())
}
