// Package notify implements the notification deriver: a pure classification
// of companies into overdue and due-today buckets from an already-fetched
// snapshot of companies and active scheduled contacts.
//
// Dates are compared at day granularity only. A company's effective
// next-contact date is resolved by priority: the active schedule's date when
// one exists, otherwise the company's denormalized NextCommunication field,
// otherwise the company contributes no notification.
package notify

import (
	"time"

	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

// dateLayouts are the accepted input formats, tried in order. Whatever the
// format, only the calendar day survives normalization.
var dateLayouts = []string{
	dayLayout,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// Classification holds the two disjoint notification buckets. Ordering
// within each bucket follows the input company ordering.
type Classification struct {
	Overdue  []models.Company `json:"overdue"`
	DueToday []models.Company `json:"dueToday"`
}

// Count is the total notification count shown on the badge.
func (c Classification) Count() int {
	return len(c.Overdue) + len(c.DueToday)
}

// Day normalizes a date string to YYYY-MM-DD, stripping any time-of-day
// component. The second return value reports whether the input was parseable.
func Day(s string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dayLayout), true
		}
	}
	return "", false
}

// Today returns the current UTC calendar day as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format(dayLayout)
}

// Classify derives the overdue and due-today buckets for the given snapshot.
// The active map is keyed by company ID with at most one entry per key. The
// derivation holds no state: identical inputs yield identical output, and a
// schedule referencing a company absent from the snapshot is ignored.
func Classify(companies []models.Company, active map[uuid.UUID]models.ScheduledContact, today string) Classification {
	var c Classification

	day, ok := Day(today)
	if !ok {
		return c
	}

	for _, company := range companies {
		effective, ok := effectiveDate(company, active)
		if !ok {
			continue
		}
		switch {
		case effective < day:
			c.Overdue = append(c.Overdue, company)
		case effective == day:
			c.DueToday = append(c.DueToday, company)
		}
	}
	return c
}

// effectiveDate resolves the company's next-contact day. The active schedule
// is authoritative; the denormalized field is only a dormant fallback.
func effectiveDate(company models.Company, active map[uuid.UUID]models.ScheduledContact) (string, bool) {
	if schedule, ok := active[company.ID]; ok {
		return Day(schedule.ScheduledDate)
	}
	if company.NextCommunication != "" {
		return Day(company.NextCommunication)
	}
	return "", false
}

// ActiveByCompany keys a list of active schedules by company ID. Later rows
// for the same company overwrite earlier ones, preserving the at-most-one
// invariant for consumers.
func ActiveByCompany(schedules []models.ScheduledContact) map[uuid.UUID]models.ScheduledContact {
	active := make(map[uuid.UUID]models.ScheduledContact, len(schedules))
	for _, s := range schedules {
		active[s.CompanyID] = s
	}
	return active
}
