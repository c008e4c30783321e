package app

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day1 = Date{2024, 3, 5}
	day2 = Date{2024, 3, 6}

	printedResult = Result{
		Status: StatusPrinted,
		Days: []DayEvents{
			{Date: day1, Events: []string{"review", "standup"}},
			{Date: day2, Events: []string{}},
			{Date: Date{2025, 1, 1}, Events: []string{"party"}},
		},
	}
	foundResult = Result{Status: StatusFound, Date: day1, Events: []string{"review", "standup"}}
)

func TestTextRenderer(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{name: "Ok writes nothing", res: Result{Status: StatusOK}, want: ""},
		{name: "No date", res: Result{Status: StatusNoDate, Date: day1}, want: "> Date not found\n"},
		{name: "No event", res: Result{Status: StatusNoEvent, Date: day1}, want: "> Event not found\n"},
		{name: "Deleted event", res: Result{Status: StatusDeleted, Date: day1}, want: "> Deleted successfully\n"},
		{name: "Deleted date", res: Result{Status: StatusDeleted, Date: day1, WholeDate: true, Count: 2}, want: "> Deleted 2 events\n"},
		{name: "Found", res: foundResult, want: "review\nstandup\n"},
		{name: "Found empty", res: Result{Status: StatusFound, Date: day1, Events: []string{}}, want: ""},
		{name: "Printed", res: printedResult, want: "2024-03-05 review\n2024-03-05 standup\n2025-01-01 party\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			require.NoError(t, TextRenderer{}.Result(&b, tt.res))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestTextRendererError(t *testing.T) {
	var b strings.Builder
	require.NoError(t, TextRenderer{}.Error(&b, fmt.Errorf("%w: remove", ErrUnknownCommand)))
	assert.Equal(t, "> Error: unknown command: remove\n", b.String())
}

func TestCSVRenderer(t *testing.T) {
	var b strings.Builder
	require.NoError(t, CSVRenderer{}.Result(&b, printedResult))
	assert.Equal(t, "date,event\n2024-03-05,review\n2024-03-05,standup\n2025-01-01,party\n", b.String())

	b.Reset()
	require.NoError(t, CSVRenderer{}.Result(&b, Result{Status: StatusFound, Date: day1, Events: []string{`a,"b"`}}))
	assert.Equal(t, "date,event\n2024-03-05,\"a,\"\"b\"\"\"\n", b.String())

	// Status results fall back to text
	b.Reset()
	require.NoError(t, CSVRenderer{}.Result(&b, Result{Status: StatusNoDate}))
	assert.Equal(t, "> Date not found\n", b.String())
}

func TestJSONRenderer(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{name: "Ok", res: Result{Status: StatusOK}, want: `{"status":"ok"}`},
		{name: "No date", res: Result{Status: StatusNoDate, Date: day1}, want: `{"date":"2024-03-05","status":"no_date"}`},
		{
			name: "Deleted date",
			res:  Result{Status: StatusDeleted, Date: day1, WholeDate: true, Count: 2},
			want: `{"count":2,"date":"2024-03-05","status":"deleted","whole_date":true}`,
		},
		{
			name: "Deleted event",
			res:  Result{Status: StatusDeleted, Date: day1},
			want: `{"date":"2024-03-05","status":"deleted","whole_date":false}`,
		},
		{
			name: "Found empty",
			res:  Result{Status: StatusFound, Date: day1},
			want: `{"date":"2024-03-05","events":[],"status":"found"}`,
		},
		{
			name: "Printed",
			res:  printedResult,
			want: `{"days":[{"date":"2024-03-05","events":["review","standup"]},{"date":"2024-03-06","events":[]},{"date":"2025-01-01","events":["party"]}],"status":"printed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, JSONRenderer{}.Result(&b, tt.res))
			assert.JSONEq(t, tt.want, b.String())
			assert.True(t, strings.HasSuffix(b.String(), "\n"), "one object per line")
		})
	}
}

func TestJSONRendererError(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, JSONRenderer{}.Error(&b, errors.New("boom")))
	assert.JSONEq(t, `{"status":"error","error":"boom"}`, b.String())
}

func TestICSRenderer(t *testing.T) {
	stamp := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	r := ICSRenderer{Now: func() time.Time { return stamp }}

	var b strings.Builder
	require.NoError(t, r.Result(&b, printedResult))
	body := b.String()

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ICSProductID,
		"DTSTAMP:20240301T083000Z",
		"DTSTART;VALUE=DATE:20240305",
		"DTSTART;VALUE=DATE:20250101",
		"SUMMARY:standup",
		"SUMMARY:party",
		"UID:" + EventUID(day1, "review"),
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		assert.Contains(t, body, field)
	}

	// One VEVENT per event; the empty date contributes none
	assert.Equal(t, 3, strings.Count(body, "BEGIN:VEVENT"))
	assert.NotContains(t, body, "DTEND")
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\n"))
	assert.True(t, strings.HasSuffix(body, "END:VCALENDAR\n"))
}

func TestICSRendererFoundAndStatus(t *testing.T) {
	r := ICSRenderer{Now: func() time.Time { return time.Unix(0, 0) }}

	var b strings.Builder
	require.NoError(t, r.Result(&b, Result{Status: StatusFound, Date: day1, Events: []string{"a;b,c"}}))
	assert.Contains(t, b.String(), `SUMMARY:a\;b\,c`)
	assert.Equal(t, 1, strings.Count(b.String(), "BEGIN:VEVENT"))

	b.Reset()
	require.NoError(t, r.Result(&b, Result{Status: StatusDeleted, WholeDate: true, Count: 4}))
	assert.Equal(t, "> Deleted 4 events\n", b.String())
}

func TestEventUID(t *testing.T) {
	uid := EventUID(day1, "standup")
	assert.Equal(t, uid, EventUID(day1, "standup"))
	assert.NotEqual(t, uid, EventUID(day2, "standup"))
	assert.NotEqual(t, uid, EventUID(day1, "review"))
	assert.True(t, strings.HasSuffix(uid, "@"+AppName))
	assert.Len(t, uid, 32+1+len(AppName))
}

func TestNewRenderer(t *testing.T) {
	for _, format := range Formats {
		r, err := NewRenderer(format, nil)
		require.NoError(t, err, format)
		assert.NotNil(t, r)
	}

	_, err := NewRenderer("xml", nil)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRendererWriteErrors(t *testing.T) {
	for _, format := range Formats {
		r, err := NewRenderer(format, nil)
		require.NoError(t, err)
		assert.Error(t, r.Result(failingWriter{}, printedResult), format)
		assert.Error(t, r.Error(failingWriter{}, errors.New("x")), format)
	}
}
