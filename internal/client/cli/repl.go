package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// usageError is returned by a command invoked with wrong arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Due(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Today(ctx context.Context, args []string) error
	Next(ctx context.Context, args []string) error
	Prev(ctx context.Context, args []string) error
	Goto(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Review(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Archive(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	SetSettings(ctx context.Context, args []string) error
	Categories(ctx context.Context, args []string) error
	AddCategory(ctx context.Context, args []string) error
	RenameCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error
	Reload(ctx context.Context, args []string) error
	describeError(err error) string
}

const helpText = `Available commands:
  due                              study list for the view date
  stats                            collection counters
  today | next | prev              move the view date
  goto <YYYY-MM-DD>                view a specific date
  show <id>                        item details
  review <id> <grade> [days]       grade: confident, medium, wtf, custom
  add                              create an item
  edit <id>                        change item content
  archive <id>                     archive an item (asks for confirmation)
  delete <id>                      delete an item (asks for confirmation)
  settings                         show review intervals
  set-settings <c> <m> <w>         change review intervals
  categories                       list categories
  add-category <name>
  rename-category <old> <new>
  delete-category <name>
  reload                           fetch everything from the server
  exit | quit`

// runREPL starts a read–eval–print loop for the Mnemos CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a with the remaining tokens. Unknown commands and
// command errors are reported back to the user. The loop exits on EOF, on
// "exit" or "quit", or when ctx is cancelled.
//
// promptFn returns the prompt; an empty prompt is not printed, which keeps
// piped input quiet.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if p := promptFn(); p != "" {
			printlnFn(p)
		}
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var run func(context.Context, []string) error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "due", "d":
			run = a.Due
		case "stats":
			run = a.Stats
		case "today":
			run = a.Today
		case "next", "n":
			run = a.Next
		case "prev", "p":
			run = a.Prev
		case "goto":
			run = a.Goto
		case "show", "s":
			run = a.Show
		case "review", "r":
			run = a.Review
		case "add":
			run = a.Add
		case "edit":
			run = a.Edit
		case "archive":
			run = a.Archive
		case "delete":
			run = a.Delete
		case "settings":
			run = a.Settings
		case "set-settings":
			run = a.SetSettings
		case "categories":
			run = a.Categories
		case "add-category":
			run = a.AddCategory
		case "rename-category":
			run = a.RenameCategory
		case "delete-category":
			run = a.DeleteCategory
		case "reload":
			run = a.Reload
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := run(ctx, args); err != nil {
			var u usageError
			if errors.As(err, &u) {
				printlnFn("Usage:", string(u))
				continue
			}
			if errors.Is(err, io.EOF) {
				return
			}
			printlnFn("Error:", a.describeError(err))
		}
	}
}
