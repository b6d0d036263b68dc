package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"check",
	"tree",
	"repl",
	"serve",
	"import",
	"categories",
	"stat",
	"version",
	"bash",
	"help",
}

// commandFlags are the long flags offered after a command
var commandFlags = map[string][]string{
	"check":      {"-config", "-parser", "-format", "-tree", "-no-color"},
	"tree":       {"-config", "-parser", "-svg"},
	"repl":       {"-config", "-parser", "-no-color"},
	"serve":      {"-config", "-parser", "-addr"},
	"import":     {"-db"},
	"categories": {"-markdown", "-no-color"},
	"stat":       {"-corpus"},
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	completions := getCompletions(args)
	for _, c := range completions {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	// args[0] is "svocheck" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1

	lastWord := args[cursorIndex]
	var candidates []string

	switch {
	case cursorIndex == commandIndex:
		// User is typing the command itself
		candidates = commands
	case args[commandIndex] == "help" && cursorIndex == commandIndex+1:
		candidates = commands
	case !strings.HasPrefix(lastWord, "-"):
	default:
		candidates = commandFlags[args[commandIndex]]
	}

	var completions []string
	for _, c := range candidates {
		if strings.HasPrefix(c, lastWord) {
			completions = append(completions, c)
		}
	}
	return completions
}
