package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	handleError(ctx context.Context, err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Refresh(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	Stats(ctx context.Context) error
	Board(ctx context.Context) error
	Columns(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: register, login, help, exit"
	helpUser  = "Available commands: whoami, refresh, (l)ist, show <id>, add, edit <id>, delete <id>, stats, board, columns [key...|reset], logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// Errors returned by handlers go to a.handleError so one failed command never
// ends the loop. The loop exits on EOF or "exit"/"quit".
//
// Commands that need a session are refused while logged out; commands that
// take an id print their usage when it is missing.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jt (%s)> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "register":
			a.handleError(ctx, a.Register(ctx))
			continue
		case "login":
			a.handleError(ctx, a.Login(ctx))
			continue
		}

		if !a.isLoggedIn() {
			if isUserCommand(cmd) {
				printlnFn("Please login first.")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		var cmdErr error
		switch cmd {
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.Whoami(ctx)
		case "refresh":
			cmdErr = a.Refresh(ctx)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "add":
			cmdErr = a.Add(ctx)
		case "stats":
			cmdErr = a.Stats(ctx)
		case "board":
			cmdErr = a.Board(ctx)
		case "columns":
			cmdErr = a.Columns(ctx, args)
		case "show", "edit", "delete":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "show":
				cmdErr = a.Show(ctx, args[0])
			case "edit":
				cmdErr = a.Edit(ctx, args[0])
			default:
				cmdErr = a.Delete(ctx, args[0])
			}
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}
		a.handleError(ctx, cmdErr)
	}
}

func isUserCommand(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "refresh", "l", "list", "show", "add", "edit", "delete", "stats", "board", "columns":
		return true
	}
	return false
}
