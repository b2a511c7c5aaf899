package dispatch

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// handlerFunc executes one command. The string is the display text for
// expected outcomes; an error carries validation or usage failures, which
// the dispatcher renders as text and never lets kill the loop.
type handlerFunc func(args []string) (string, error)

// binding ties one recognized keyword to its handler. Synonyms of every
// supported language are active at the same time.
type binding struct {
	keyword string
	run     handlerFunc
	exit    bool
}

// Dispatcher parses free text into a command keyword plus whitespace-split
// arguments and invokes the matching address-book operation. It owns no
// hidden state: the book, clock, and paths are injected at construction.
type Dispatcher struct {
	book     *book.AddressBook
	clock    book.Clock
	tr       *Translator
	bookPath string
	reminder string

	// Confirm asks the user to approve a destructive operation. The REPL
	// wires it to the terminal; when nil the operation proceeds, which is
	// what non-interactive callers want.
	Confirm func(prompt string) bool

	table []binding
}

// NewDispatcher wires the command table for the given book. bookPath is
// where exit saves to; reminder is the optional ISO8601 trigger attached
// to exported calendar events.
func NewDispatcher(b *book.AddressBook, clock book.Clock, tr *Translator, bookPath, reminder string) *Dispatcher {
	d := &Dispatcher{
		book:     b,
		clock:    clock,
		tr:       tr,
		bookPath: bookPath,
		reminder: reminder,
	}

	add := func(run handlerFunc, exit bool, keywords ...string) {
		for _, kw := range keywords {
			d.table = append(d.table, binding{keyword: kw, run: run, exit: exit})
		}
	}

	add(d.handleAdd, false, "add", "+")
	add(d.handleChange, false, "change", "зміни")
	add(d.handleDelete, false, "delete", "del", "видали")
	add(d.handleGet, false, "get", "дай")
	add(d.handleSearch, false, "search", "find", "знайди")
	add(d.handleShowAll, false, "show all", "покажи все")
	add(d.handleBirthday, false, "birthday")
	add(d.handleImport, false, "import")
	add(d.handleCalendar, false, "calendar")
	add(d.handleHelp, false, "help")
	add(d.handleExit, true, "exit", "bye", "end", "вихід")

	// Longest keyword wins, so "delete" is tried before "del" and
	// "show all" before any single-word prefix.
	sort.SliceStable(d.table, func(i, j int) bool {
		return len(d.table[i].keyword) > len(d.table[j].keyword)
	})

	return d
}

// Dispatch executes one input line and returns the display text plus
// whether the session should end. Errors are already rendered as text.
func (d *Dispatcher) Dispatch(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, b := range d.table {
		if !matchKeyword(lower, b.keyword) {
			continue
		}
		args := strings.Fields(trimmed[len(b.keyword):])

		slog.Debug(config.MsgDispatching,
			config.LogKeyComponent, config.CompDispatch,
			config.LogKeyCommand, b.keyword,
		)

		out, err := b.run(args)
		if err != nil {
			return err.Error(), false
		}
		return out, b.exit
	}

	return d.tr.MsgData("unknown_command", map[string]any{"Input": trimmed}), false
}

// matchKeyword reports whether input starts with keyword. Keywords ending
// in a letter must be followed by whitespace or end of input, so "addison"
// is not an add command; "+" may be glued to its argument.
func matchKeyword(input, keyword string) bool {
	if !strings.HasPrefix(input, keyword) {
		return false
	}
	last := keyword[len(keyword)-1]
	if (last >= 'a' && last <= 'z') || last >= 0x80 {
		rest := input[len(keyword):]
		return rest == "" || rest[0] == ' ' || rest[0] == '\t'
	}
	return true
}

func (d *Dispatcher) usage(key string) error {
	return errors.New(d.tr.Msg(key))
}

// handleAdd creates a contact or appends a phone to an existing one.
// Format: add Name 1234567890 [11-11-1999]
func (d *Dispatcher) handleAdd(args []string) (string, error) {
	if len(args) < 2 {
		return "", d.usage("usage_add")
	}
	name := args[0]
	birthday := ""
	if len(args) >= 3 {
		birthday = args[2]
	}

	if rec := d.book.Get(name); rec != nil {
		phone, err := book.NewPhoneNumber(args[1])
		if err != nil {
			return "", err
		}
		return rec.AddPhone(phone), nil
	}

	rec, err := book.NewRecord(name, args[1], birthday)
	if err != nil {
		return "", err
	}
	return d.book.AddRecord(rec), nil
}

// handleChange swaps one phone value for another on an existing contact.
func (d *Dispatcher) handleChange(args []string) (string, error) {
	if len(args) != 3 {
		return "", d.usage("usage_change")
	}
	rec := d.book.Get(args[0])
	if rec == nil {
		return d.tr.MsgData("no_contact", map[string]any{"Name": args[0]}), nil
	}
	oldPhone, err := book.NewPhoneNumber(args[1])
	if err != nil {
		return "", err
	}
	newPhone, err := book.NewPhoneNumber(args[2])
	if err != nil {
		return "", err
	}
	return rec.ReplacePhone(oldPhone, newPhone), nil
}

// handleDelete removes a contact after interactive confirmation.
func (d *Dispatcher) handleDelete(args []string) (string, error) {
	if len(args) != 1 {
		return "", d.usage("usage_delete")
	}
	name := args[0]
	if d.book.Get(name) == nil {
		return d.tr.MsgData("not_found", map[string]any{"Name": name}), nil
	}
	if d.Confirm != nil && !d.Confirm(d.tr.MsgData("confirm_delete", map[string]any{"Name": name})) {
		return d.tr.Msg("delete_cancelled"), nil
	}
	return d.book.DeleteRecord(name), nil
}

// handleGet prints a contact's phones and, when set, days to birthday.
func (d *Dispatcher) handleGet(args []string) (string, error) {
	if len(args) != 1 {
		return "", d.usage("usage_get")
	}
	name := args[0]
	rec := d.book.Get(name)
	if rec == nil {
		return d.tr.MsgData("not_found", map[string]any{"Name": name}), nil
	}

	var phones []string
	for _, p := range rec.Phones() {
		phones = append(phones, p.String())
	}
	data := map[string]any{"Name": name, "Phones": strings.Join(phones, ", ")}

	if bd := rec.Birthday(); bd != nil {
		data["Days"] = bd.DaysUntilNext(d.clock)
		return d.tr.MsgData("phones_for_days", data), nil
	}
	return d.tr.MsgData("phones_for", data), nil
}

// handleSearch lists every record whose rendering contains the query.
// Queries shorter than three symbols are rejected here, not by the store.
func (d *Dispatcher) handleSearch(args []string) (string, error) {
	if len(args) != 1 || len([]rune(args[0])) < config.MinSearchLen {
		return "", d.usage("usage_search")
	}
	matches := d.book.Search(args[0])
	if len(matches) == 0 {
		return d.tr.MsgData("no_matches", map[string]any{"Query": args[0]}), nil
	}
	var lines []string
	for _, r := range matches {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n"), nil
}

// handleShowAll prints pages of contacts. With no arguments every page is
// printed; one argument selects a single page, two an inclusive range.
func (d *Dispatcher) handleShowAll(args []string) (string, error) {
	if d.book.Len() == 0 {
		return d.tr.Msg("empty_book"), nil
	}

	startPage, endPage := 1, math.MaxInt
	var err error
	switch len(args) {
	case 0:
	case 1:
		if startPage, err = strconv.Atoi(args[0]); err != nil {
			return "", d.usage("usage_show_all")
		}
		endPage = startPage
	case 2:
		if startPage, err = strconv.Atoi(args[0]); err != nil {
			return "", d.usage("usage_show_all")
		}
		if endPage, err = strconv.Atoi(args[1]); err != nil {
			return "", d.usage("usage_show_all")
		}
	default:
		return "", d.usage("usage_show_all")
	}

	var sections []string
	for page, records := range d.book.Pages() {
		if page < startPage {
			continue
		}
		if page > endPage {
			break
		}
		lines := []string{d.tr.MsgData("page_header", map[string]any{"Page": page})}
		for _, r := range records {
			line := r.String()
			if bd := r.Birthday(); bd != nil {
				line += d.tr.MsgData("days_suffix", map[string]any{"Days": bd.DaysUntilNext(d.clock)})
			}
			lines = append(lines, line)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n"), nil
}

// handleBirthday prints the stored birthday and days until the next one.
func (d *Dispatcher) handleBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", d.usage("usage_birthday")
	}
	rec := d.book.Get(args[0])
	if rec == nil {
		return d.tr.MsgData("not_found", map[string]any{"Name": args[0]}), nil
	}
	info := rec.BirthdayInfo(d.clock)
	if info == "" {
		return d.tr.MsgData("no_birthday", map[string]any{"Name": args[0]}), nil
	}
	return info, nil
}

// handleImport merges contacts from an external vCard file into the book.
func (d *Dispatcher) handleImport(args []string) (string, error) {
	if len(args) != 1 || !strings.EqualFold(filepath.Ext(args[0]), config.ExtVCF) {
		return "", d.usage("usage_import")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrImportOpen, err)
	}
	defer func() { _ = f.Close() }()

	count, err := d.book.Import(f)
	if err != nil {
		return "", err
	}
	return d.tr.MsgData("imported", map[string]any{"Count": count, "Path": args[0]}), nil
}

// handleCalendar exports upcoming birthdays as an iCalendar file.
func (d *Dispatcher) handleCalendar(args []string) (string, error) {
	if len(args) != 1 || !strings.EqualFold(filepath.Ext(args[0]), config.ExtICS) {
		return "", d.usage("usage_calendar")
	}
	f, err := os.Create(args[0])
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	count, err := d.book.ExportCalendar(f, d.clock, d.reminder)
	if err != nil {
		return "", err
	}
	return d.tr.MsgData("exported", map[string]any{"Count": count, "Path": args[0]}), nil
}

func (d *Dispatcher) handleHelp([]string) (string, error) {
	return d.tr.Msg("help"), nil
}

// handleExit saves the book and ends the session. A failed save keeps the
// session alive so the user does not silently lose data.
func (d *Dispatcher) handleExit([]string) (string, error) {
	if err := d.book.Save(d.bookPath); err != nil {
		return "", err
	}
	return d.tr.Msg("bye"), nil
}
