package app

import (
	"github.com/google/btree"
)

// btreeDegree is the branching factor of the date and event trees
const btreeDegree = 16

type dayEntry struct {
	date   Date
	events *btree.BTreeG[string]
}

func lessDay(a, b dayEntry) bool {
	return a.date.Before(b.date)
}

func lessEvent(a, b string) bool {
	return a < b
}

// Store is the in-memory calendar: an ordered map from Date to an ordered set of events.
// It is not safe for concurrent use.
type Store struct {
	days *btree.BTreeG[dayEntry]
}

// NewStore returns an empty calendar
func NewStore() *Store {
	return &Store{days: btree.NewG(btreeDegree, lessDay)}
}

// Len returns the number of dates held, including dates whose last event was deleted
func (s *Store) Len() int {
	return s.days.Len()
}

// Has reports whether date has an entry
func (s *Store) Has(date Date) bool {
	return s.days.Has(dayEntry{date: date})
}

// Execute applies cmd and reports the outcome
func (s *Store) Execute(cmd StoreCommand) Result {
	switch c := cmd.(type) {
	case AddCommand:
		s.add(c.Date, c.Event)
		return Result{Status: StatusOK}
	case DeleteCommand:
		if c.WholeDate() {
			return s.deleteDate(c.Date)
		}
		return s.deleteEvent(c.Date, c.Event)
	case FindCommand:
		return s.find(c.Date)
	case PrintCommand:
		return Result{Status: StatusPrinted, Days: s.snapshot()}
	}
	return Result{Status: StatusOK}
}

func (s *Store) add(date Date, event string) {
	entry, ok := s.days.Get(dayEntry{date: date})
	if !ok {
		entry = dayEntry{date: date, events: btree.NewG(btreeDegree, lessEvent)}
		s.days.ReplaceOrInsert(entry)
	}
	entry.events.ReplaceOrInsert(event)
}

// deleteEvent leaves the date entry in place even when its last event goes away,
// unlike deleteDate.
func (s *Store) deleteEvent(date Date, event string) Result {
	entry, ok := s.days.Get(dayEntry{date: date})
	if !ok {
		return Result{Status: StatusNoDate, Date: date}
	}
	if _, removed := entry.events.Delete(event); !removed {
		return Result{Status: StatusNoEvent, Date: date}
	}
	return Result{Status: StatusDeleted, Date: date}
}

func (s *Store) deleteDate(date Date) Result {
	entry, ok := s.days.Delete(dayEntry{date: date})
	if !ok {
		return Result{Status: StatusNoDate, Date: date}
	}
	return Result{Status: StatusDeleted, Date: date, WholeDate: true, Count: entry.events.Len()}
}

// find reports StatusOK, not StatusNoDate, for a date without an entry
func (s *Store) find(date Date) Result {
	entry, ok := s.days.Get(dayEntry{date: date})
	if !ok {
		return Result{Status: StatusOK}
	}
	return Result{Status: StatusFound, Date: date, Events: collectEvents(entry.events)}
}

func (s *Store) snapshot() []DayEvents {
	days := make([]DayEvents, 0, s.days.Len())
	s.days.Ascend(func(entry dayEntry) bool {
		days = append(days, DayEvents{Date: entry.date, Events: collectEvents(entry.events)})
		return true
	})
	return days
}

func collectEvents(events *btree.BTreeG[string]) []string {
	out := make([]string, 0, events.Len())
	events.Ascend(func(event string) bool {
		out = append(out, event)
		return true
	})
	return out
}
