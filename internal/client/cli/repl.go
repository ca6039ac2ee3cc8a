package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight
// stub.
type execIface interface {
	Add(ctx context.Context, paths []string) error
	List(ctx context.Context) error
	Remove(ctx context.Context, arg string) error
	Clear(ctx context.Context) error
	Upload(ctx context.Context, label string) error
	Search(ctx context.Context, query string) error
	SetKey(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the photo album CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//   - help                — show available commands
//   - add <path>…         — select image files into the pending list
//   - list | l            — show the pending list
//   - remove | rm <n>     — remove pending entry n
//   - clear               — empty the pending list
//   - upload | up [label] — upload the batch, optionally with shared labels
//   - search | s <text>   — search the album by free text
//   - setkey              — enter the API key (no echo)
//   - exit | quit         — leave the program
//
// Any errors returned by command handlers are ignored here; handlers render
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("album%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: add <path>…, (l)ist, remove <n>, clear, upload [label], search <text>, setkey, exit")

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <path> [path...]")
				continue
			}
			_ = a.Add(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "remove", "rm":
			if len(args) != 1 {
				printlnFn("Usage: remove <n>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "clear":
			_ = a.Clear(ctx)

		case "upload", "up":
			_ = a.Upload(ctx, strings.Join(args, " "))

		case "search", "s":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "setkey":
			_ = a.SetKey(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
