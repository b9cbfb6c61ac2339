package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/todoscreen/internal/app"
	"github.com/dori/todoscreen/internal/config"
	"github.com/dori/todoscreen/internal/ui"
	"github.com/dori/todoscreen/internal/ui/theme"
)

var (
	version = "0.1.0"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Subcommand handling
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Fprintf(stdout, "todoscreen v%s\n", version)
			return exitOK
		case "help", "-h", "--help":
			printHelp(stdout)
			return exitOK
		}
	}

	fs := flag.NewFlagSet("todoscreen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	themeFlag := fs.String("theme", "", "Theme name ("+strings.Join(theme.Names(), ", ")+")")
	configFlag := fs.String("config", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", fs.Arg(0))
		printHelp(stderr)
		return exitUsage
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if *themeFlag != "" {
		cfg.UI.Theme = *themeFlag
	}

	t, ok := theme.ByName(cfg.UI.Theme)
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown theme %q (available: %s)\n",
			cfg.UI.Theme, strings.Join(theme.Names(), ", "))
		return exitUsage
	}
	theme.SetTheme(t)

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func printHelp(w io.Writer) {
	help := `todoscreen - a single-screen todo list

Usage:
  todoscreen                Start the TUI
  todoscreen version        Show version
  todoscreen help           Show this help

Options:
  --theme <name>    Theme (` + strings.Join(theme.Names(), ", ") + `)
  --config <path>   Config file (default: ` + config.DefaultPath() + `)

Keybindings:
  Typing:       enter         Save the todo
                esc/tab       Move to the list
  List:         ↑/↓ or j/k    Move cursor
                enter/x       Remove highlighted todo
                a/tab         Back to the input
                ?             Help
                q             Quit
  Anywhere:     click a row   Remove it
                ctrl+t        Cycle theme
                ctrl+c        Quit

Nothing is saved: the list lives as long as the screen.

Environment:
  TODOSCREEN_CONFIG         Config file path
  TODOSCREEN_DEBUG=1        Write a debug log (see debug.log_path)`

	fmt.Fprintln(w, help)
}

func runTUI(cfg config.Config) error {
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	p := tea.NewProgram(
		ui.NewRootModel(application),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
