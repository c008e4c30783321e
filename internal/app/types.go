package app

// Status identifies the kind of Result returned by Store.Execute
type Status int

const (
	StatusOK Status = iota
	StatusNoDate
	StatusNoEvent
	StatusDeleted
	StatusFound
	StatusPrinted
)

var statusNames = [...]string{
	StatusOK:      "ok",
	StatusNoDate:  "no_date",
	StatusNoEvent: "no_event",
	StatusDeleted: "deleted",
	StatusFound:   "found",
	StatusPrinted: "printed",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// DayEvents is one date of the calendar with its events in ascending order
type DayEvents struct {
	Date   Date     `json:"date"`
	Events []string `json:"events"`
}

// Result is the outcome of a single StoreCommand.
//
// Which fields are set depends on Status:
//   - StatusDeleted: Date, WholeDate, and Count when WholeDate is true
//   - StatusFound: Date and Events (possibly empty)
//   - StatusPrinted: Days
//
// Slices are copies; they never change after Execute returns.
type Result struct {
	Status    Status
	Date      Date
	WholeDate bool
	Count     int
	Events    []string
	Days      []DayEvents
}
