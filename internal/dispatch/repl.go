package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// REPL runs the blocking read-evaluate-print loop on one goroutine. It is
// the only place that reads interactive input; the store and the handlers
// never touch the terminal themselves.
type REPL struct {
	dispatcher *Dispatcher
	scanner    *bufio.Scanner
	out        io.Writer
}

// NewREPL builds the loop around the dispatcher and wires the interactive
// delete confirmation to the same input stream.
func NewREPL(d *Dispatcher, in io.Reader, out io.Writer) *REPL {
	r := &REPL{
		dispatcher: d,
		scanner:    bufio.NewScanner(in),
		out:        out,
	}
	d.Confirm = r.confirm
	return r
}

// Run prints the greeting and processes lines until an exit command, end
// of input, or context cancellation. End of input saves like exit does, so
// piped sessions do not lose changes.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, r.dispatcher.tr.Msg("greeting"))

	for {
		if err := ctx.Err(); err != nil {
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompDispatch)
			return err
		}

		fmt.Fprint(r.out, r.dispatcher.tr.Msg("prompt"))
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return err
			}
			// EOF: flush to disk before ending the session.
			out, _ := r.dispatcher.Dispatch("exit")
			fmt.Fprintln(r.out, out)
			break
		}

		out, exit := r.dispatcher.Dispatch(r.scanner.Text())
		if out != "" {
			fmt.Fprintln(r.out, out)
		}
		if exit {
			break
		}
	}

	slog.Info(config.MsgReplStop, config.LogKeyComponent, config.CompDispatch)
	return nil
}

// confirm prints the prompt and accepts a localized or English "yes".
func (r *REPL) confirm(prompt string) bool {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(r.scanner.Text()))
	return answer == "yes" || answer == r.dispatcher.tr.Msg("confirm_yes")
}
