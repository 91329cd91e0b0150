package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Status(ctx context.Context) error
	Sale(ctx context.Context) error
	Pending(ctx context.Context) error
	Sync(ctx context.Context) error
	Products(ctx context.Context, page int) error
	Inventory(ctx context.Context, page int) error
	Sessions(ctx context.Context) error
	ClearCache(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the shopsync POS console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current connectivity status (from statusFn) and
// accepts commands:
//
//   - help               — show available commands
//   - status             — connectivity and pending-queue summary
//   - sale               — record a sale (queued locally when offline)
//   - pending            — list sales not yet pushed to the backend
//   - sync               — push queued sales to the backend
//   - products [page]    — list products
//   - inventory [page]   — list inventory levels
//   - sessions           — list sale sessions
//   - clear-cache        — drop memoized lists and offline snapshots
//   - exit | quit        — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pos %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: status, sale, pending, sync, products [page], inventory [page], sessions, clear-cache, exit")

		case "status":
			_ = a.Status(ctx)

		case "sale":
			_ = a.Sale(ctx)

		case "pending":
			_ = a.Pending(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "p", "products":
			_ = a.Products(ctx, pageArg(args))

		case "inventory":
			_ = a.Inventory(ctx, pageArg(args))

		case "sessions":
			_ = a.Sessions(ctx)

		case "clear-cache":
			_ = a.ClearCache(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// pageArg extracts a 1-based page number from command arguments,
// defaulting to page 1 on absence or garbage.
func pageArg(args []string) int {
	if len(args) == 0 {
		return 1
	}
	var p int
	if _, err := fmt.Sscanf(args[0], "%d", &p); err != nil || p < 1 {
		return 1
	}
	return p
}
