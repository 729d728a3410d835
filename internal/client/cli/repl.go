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

// printFn writes the prompt without a trailing newline.
var printFn = fmt.Print

const helpText = `Available commands:
  tab encrypt|decrypt        switch panel
  pick <slot> <path>         choose a file (slots: encrypt, decrypt, key)
  drop <slot> <path>         drop a file onto a slot
  dragover <slot>            highlight a slot
  dragleave <slot>           remove the highlight
  clear <slot>               remove the chosen file
  password [text]            set the password (prompts when text is omitted)
  submit                     encrypt or decrypt the chosen file
  download <kind>            save an artifact (encrypted, key, decrypted)
  copy                       copy the generated password
  reset                      start over with an empty form
  lang <tag>                 switch language (en, ru)
  show                       print the screen again
  exit | quit                leave the program`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Help()
	SelectTab(name string) error
	Pick(slot, path string) error
	Drop(slot, path string) error
	DragOver(slot string) error
	DragLeave(slot string) error
	Clear(slot string) error
	Password(ctx context.Context, args []string) error
	Submit(ctx context.Context) error
	Download(ctx context.Context, kind string) error
	Copy() error
	Reset() error
	Lang(ctx context.Context, tag string) error
	Show()
}

// runREPL reads commands line by line and dispatches them to a. The loop
// exits on EOF, on context cancellation or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers show
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(promptFn())

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			printlnFn()
			return
		}

		parts, perr := splitCommand(line)
		if perr != nil {
			printlnFn(perr)
			continue
		}
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "?":
			a.Help()

		case "tab":
			if len(args) != 1 {
				printlnFn("Usage: tab encrypt|decrypt")
				continue
			}
			_ = a.SelectTab(args[0])

		case "pick", "drop":
			if len(args) != 2 {
				printlnFn(fmt.Sprintf("Usage: %s <slot> <path>", cmd))
				continue
			}
			if cmd == "pick" {
				_ = a.Pick(args[0], args[1])
			} else {
				_ = a.Drop(args[0], args[1])
			}

		case "dragover", "dragleave", "clear":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <slot>", cmd))
				continue
			}
			switch cmd {
			case "dragover":
				_ = a.DragOver(args[0])
			case "dragleave":
				_ = a.DragLeave(args[0])
			default:
				_ = a.Clear(args[0])
			}

		case "password":
			_ = a.Password(ctx, args)

		case "submit":
			_ = a.Submit(ctx)

		case "download":
			if len(args) != 1 {
				printlnFn("Usage: download encrypted|key|decrypted")
				continue
			}
			_ = a.Download(ctx, args[0])

		case "copy":
			_ = a.Copy()

		case "reset":
			_ = a.Reset()

		case "lang":
			if len(args) != 1 {
				printlnFn("Usage: lang en|ru")
				continue
			}
			_ = a.Lang(ctx, args[0])

		case "show":
			a.Show()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// last line had no newline
			return
		}
	}
}

// splitCommand splits a line on whitespace. Double quotes group words so
// paths may contain spaces.
func splitCommand(line string) ([]string, error) {
	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
		started bool
	)

	for _, r := range strings.TrimSpace(line) {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if started {
		parts = append(parts, cur.String())
	}
	return parts, nil
}
