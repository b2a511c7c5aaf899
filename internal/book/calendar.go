package book

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// ExportCalendar writes an iCalendar feed of birthday events for every
// record with a birthday set. Events cover the current year +/- 1 so
// calendar clients can scroll without an immediate re-export, and never
// predate the person's birth. reminderTrigger, when non-empty, attaches a
// DISPLAY alarm with that ISO8601 trigger (e.g. "-P1D") to each event.
// Returns the number of events written.
func (b *AddressBook) ExportCalendar(w io.Writer, clock Clock, reminderTrigger string) (int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Event dates use local time; only the DTSTAMP is stamped in UTC.
	now := clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	events := 0
	for r := range b.Records() {
		bd := r.Birthday()
		if bd == nil {
			continue
		}
		birthDate, _ := bd.Date()

		for _, e := range birthdayEvents(r.Name(), birthDate, now, reminderTrigger) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
			events++
		}
	}

	if events == 0 {
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
		}
		return 0, nil
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyEvents, events,
	)
	return events, nil
}

// birthdayEvents builds one all-day event per target year, skipping years
// before the person is born.
func birthdayEvents(name string, birthDate, now time.Time, reminderTrigger string) []*ical.Event {
	loc := now.Location()
	uidBase := eventUID(name, birthDate)
	summary := fmt.Sprintf(config.FormatEventSummary, name)

	var events []*ical.Event
	for y := now.Year() - config.CalendarYearSpan; y <= now.Year()+config.CalendarYearSpan; y++ {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc))
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events
}

// eventUID derives a deterministic UID base so re-exports keep stable IDs.
func eventUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
