package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
}

// runREPL reads commands line by line from reader and dispatches them to a
// until EOF or "exit"/"quit".
//
//	help                 show available commands
//	register | login     authenticate
//	whoami               show the logged-in account
//	list                 list the catalog
//	show <id>            show one animal
//	add                  add an animal (interactive)
//	delete <id>          delete an animal
//	logout               forget the session token
//	exit | quit          leave the program
//
// Command errors are reported by the handlers themselves and do not stop the
// loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("zoo %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show <id>, add, delete <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (l)ist, show <id>, add, delete <id>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami", "me":
			_ = a.Me(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, arg)

		case "add":
			_ = a.Add(ctx)

		case "delete", "rm":
			_ = a.Delete(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
