// Package holiday resolves a calendar year to its holiday map.
//
// Maps are read through a persisted Store first and fetched from a remote
// Source only on a miss. Every failure degrades to an empty map: callers
// treat "nothing known" as a normal outcome.
package holiday

import "errors"

// Holiday type tags used by the remote calendar
const (
	TypePublicHoliday   = "public_holiday"
	TypeTransferWorkday = "transfer_workday"
)

// ErrNotCached is returned by a Store that has no copy for the requested year
var ErrNotCached = errors.New("holiday map not cached")

// Record is one dated entry of the holiday calendar
type Record struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	NameCN string `json:"name_cn"`
	NameEN string `json:"name_en,omitempty"`
	Type   string `json:"type"`
}

// DisplayName is the localized name, falling back to the generic one.
func (r Record) DisplayName() string {
	if r.NameCN != "" {
		return r.NameCN
	}
	return r.Name
}

// IsTransferWorkday reports whether the date is a makeup workday.
func (r Record) IsTransferWorkday() bool {
	return r.Type == TypeTransferWorkday
}

// Map holds one year of records keyed by ISO date (YYYY-MM-DD)
type Map map[string]Record

// FromRecords keys a list of records by date. Entries without a date are dropped.
func FromRecords(records []Record) Map {
	m := make(Map, len(records))
	for _, r := range records {
		if r.Date == "" {
			continue
		}
		m[r.Date] = r
	}
	return m
}
