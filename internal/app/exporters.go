package app

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/crypto/blake2b"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Renderer presents results and input errors to the user
type Renderer interface {
	Result(w io.Writer, res Result) error
	Error(w io.Writer, err error) error
}

// NewRenderer returns the renderer for one of Formats.
// now stamps generated calendar files; nil means time.Now.
func NewRenderer(format string, now func() time.Time) (Renderer, error) {
	if now == nil {
		now = time.Now
	}
	switch format {
	case FormatText, "":
		return TextRenderer{}, nil
	case FormatCSV:
		return CSVRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatICS:
		return ICSRenderer{Now: now}, nil
	}
	return nil, fmt.Errorf("invalid format %q (expected one of: %s)", format, strings.Join(Formats, ", "))
}

// TextRenderer writes the classic console output
type TextRenderer struct{}

// Result writes events one per line and status results as "> " lines
func (TextRenderer) Result(w io.Writer, res Result) error {
	var b strings.Builder

	switch res.Status {
	case StatusNoDate:
		b.WriteString(MsgStatusLineMark + MsgDateNotFound + "\n")
	case StatusNoEvent:
		b.WriteString(MsgStatusLineMark + MsgEventNotFound + "\n")
	case StatusDeleted:
		if res.WholeDate {
			fmt.Fprintf(&b, MsgStatusLineMark+MsgDeletedEvents+"\n", res.Count)
		} else {
			b.WriteString(MsgStatusLineMark + MsgDeletedOne + "\n")
		}
	case StatusFound:
		for _, event := range res.Events {
			b.WriteString(event + "\n")
		}
	case StatusPrinted:
		for _, day := range res.Days {
			for _, event := range day.Events {
				fmt.Fprintf(&b, "%s %s\n", day.Date, event)
			}
		}
	}

	return writeString(w, b.String())
}

// Error writes err as a status line
func (TextRenderer) Error(w io.Writer, err error) error {
	return writeString(w, MsgStatusLineMark+MsgErrorPrefix+err.Error()+"\n")
}

// CSVRenderer writes Found and Printed results as date,event rows.
// Everything else is written like TextRenderer.
type CSVRenderer struct{}

// Result writes a header row followed by one row per event
func (CSVRenderer) Result(w io.Writer, res Result) error {
	var rows [][]string
	switch res.Status {
	case StatusFound:
		for _, event := range res.Events {
			rows = append(rows, []string{res.Date.String(), event})
		}
	case StatusPrinted:
		for _, day := range res.Days {
			for _, event := range day.Events {
				rows = append(rows, []string{day.Date.String(), event})
			}
		}
	default:
		return TextRenderer{}.Result(w, res)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "event"}); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// Error writes err like TextRenderer
func (CSVRenderer) Error(w io.Writer, err error) error {
	return TextRenderer{}.Error(w, err)
}

// JSONRenderer writes one JSON object per result (newline delimited)
type JSONRenderer struct{}

// Result encodes res with a "status" field and the fields that status carries
func (JSONRenderer) Result(w io.Writer, res Result) error {
	data := map[string]interface{}{
		"status": res.Status.String(),
	}

	switch res.Status {
	case StatusNoDate, StatusNoEvent:
		data["date"] = res.Date
	case StatusDeleted:
		data["date"] = res.Date
		data["whole_date"] = res.WholeDate
		if res.WholeDate {
			data["count"] = res.Count
		}
	case StatusFound:
		data["date"] = res.Date
		data["events"] = nonNil(res.Events)
	case StatusPrinted:
		days := make([]DayEvents, len(res.Days))
		for i, day := range res.Days {
			days[i] = DayEvents{Date: day.Date, Events: nonNil(day.Events)}
		}
		data["days"] = days
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// Error encodes err as {"status":"error","error":...}
func (JSONRenderer) Error(w io.Writer, err error) error {
	data := map[string]string{
		"status": "error",
		"error":  err.Error(),
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode error: %w", err)
	}
	return nil
}

// ICSRenderer writes Found and Printed results as an iCalendar document with
// one all-day VEVENT per event. Everything else is written like TextRenderer.
type ICSRenderer struct {
	Now func() time.Time
}

// Result writes a VCALENDAR for Found and Printed results
func (r ICSRenderer) Result(w io.Writer, res Result) error {
	var days []DayEvents
	switch res.Status {
	case StatusFound:
		days = []DayEvents{{Date: res.Date, Events: res.Events}}
	case StatusPrinted:
		days = res.Days
	default:
		return TextRenderer{}.Result(w, res)
	}

	stamp := r.now().UTC().Format("20060102T150405Z")

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	fmt.Fprintf(&b, "PRODID:%s\n", ICSProductID)
	b.WriteString("CALSCALE:GREGORIAN\n")

	for _, day := range days {
		for _, event := range day.Events {
			// All-day event; without DTEND it lasts exactly the start date
			b.WriteString("BEGIN:VEVENT\n")
			fmt.Fprintf(&b, "UID:%s\n", EventUID(day.Date, event))
			fmt.Fprintf(&b, "DTSTAMP:%s\n", stamp)
			fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%04d%02d%02d\n", day.Date.Year, day.Date.Month, day.Date.Day)
			fmt.Fprintf(&b, "SUMMARY:%s\n", escapeICSText(event))
			b.WriteString("END:VEVENT\n")
		}
	}

	b.WriteString("END:VCALENDAR\n")
	return writeString(w, b.String())
}

// Error writes err like TextRenderer
func (ICSRenderer) Error(w io.Writer, err error) error {
	return TextRenderer{}.Error(w, err)
}

func (r ICSRenderer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// EventUID derives a stable iCalendar UID from the date and the event text
func EventUID(date Date, event string) string {
	sum := blake2b.Sum256([]byte(date.String() + "\x00" + event))
	return hex.EncodeToString(sum[:16]) + "@" + AppName
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`)

func escapeICSText(s string) string {
	return icsEscaper.Replace(s)
}

// writeString writes s to w in one call
func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}

func nonNil(events []string) []string {
	if events == nil {
		return []string{}
	}
	return events
}
