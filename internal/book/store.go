package book

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Save serializes the whole book as a vCard stream, overwriting path.
// One card per record: FN for the name, one TEL per phone, BDAY for the
// birthday. The snapshot is self-describing and reconstructs every field.
func (b *AddressBook) Save(path string) error {
	start := time.Now()
	var buf bytes.Buffer
	enc := vcard.NewEncoder(&buf)

	for r := range b.Records() {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, r.Name())
		for _, p := range r.Phones() {
			card.AddValue(vcard.FieldTelephone, p.String())
		}
		if bd := r.Birthday(); bd != nil {
			if date, ok := bd.Date(); ok {
				card.SetValue(vcard.FieldBirthday, date.Format(config.DateFormatStorage))
			}
		}
		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrBookEncode, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookWrite, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, path,
		config.LogKeyCount, b.Len(),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return nil
}

// Load replaces the book's contents with the vCard stream at path.
// A missing or empty file resets to an empty book; both are recoverable
// conditions, logged and not returned as errors.
func (b *AddressBook) Load(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info(config.MsgBookMissing,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyPath, path,
		)
		b.reset()
		return nil
	}
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	b.reset()
	count, err := b.merge(f)
	if err != nil {
		return err
	}

	if count == 0 {
		slog.Info(config.MsgBookEmpty,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyPath, path,
		)
		return nil
	}

	slog.Info(config.MsgBookLoaded,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, path,
		config.LogKeyCount, count,
	)
	return nil
}

// Import merges the vCard stream into the current book without resetting
// it: new names become records, known names gain missing phones and, when
// absent, a birthday. Returns the number of cards merged.
func (b *AddressBook) Import(r io.Reader) (int, error) {
	count, err := b.merge(r)
	if err != nil {
		return 0, err
	}
	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyImported, count,
	)
	return count, nil
}

// reset drops all records.
func (b *AddressBook) reset() {
	b.records = make(map[string]*Record)
	b.order = nil
}

// merge decodes the vCard stream and folds each card into the book.
// Malformed cards, nameless cards, and invalid phone or birthday values
// are skipped with a log entry to maximize data recovery.
func (b *AddressBook) merge(r io.Reader) (int, error) {
	dec := vcard.NewDecoder(r)
	count := 0

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompStore,
				config.LogKeyError, err,
			)
			continue
		}

		name := card.Value(vcard.FieldFormattedName)
		if name == "" {
			slog.Warn(config.MsgSkippedNoName, config.LogKeyComponent, config.CompStore)
			continue
		}

		rec := b.Get(name)
		if rec == nil {
			rec, _ = NewRecord(name, "", "")
			b.AddRecord(rec)
		}

		for _, raw := range card.Values(vcard.FieldTelephone) {
			p, err := NewPhoneNumber(raw)
			if err != nil {
				slog.Warn(config.MsgSkippedPhone,
					config.LogKeyComponent, config.CompStore,
					config.LogKeyName, name,
					config.LogKeyValue, raw,
				)
				continue
			}
			rec.AddPhone(p)
		}

		if bday := card.Value(vcard.FieldBirthday); bday != "" && rec.Birthday() == nil {
			date, err := time.Parse(config.DateFormatStorage, bday)
			if err != nil {
				slog.Warn(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompStore,
					config.LogKeyName, name,
					config.LogKeyValue, bday,
				)
			} else if err := rec.ReplaceBirthday(date.Format(config.DateFormatInput)); err != nil {
				slog.Warn(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompStore,
					config.LogKeyName, name,
					config.LogKeyValue, bday,
				)
			}
		}

		count++
	}

	return count, nil
}
