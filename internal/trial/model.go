package trial

import "time"

const TrialDays = 7

// State is the per-user trial and quota record.
//
// ScansUsedTodayCount only means anything while ScansUsedTodayDate
// equals today's date; a stale date is treated as a reset counter.
type State struct {
	FirstResultAt       *time.Time `json:"firstResultAt,omitempty"`
	TrialStartsAt       *time.Time `json:"trialStartsAt,omitempty"`
	TrialEndsAt         *time.Time `json:"trialEndsAt,omitempty"`
	IsPremium           bool       `json:"isPremium"`
	ScansUsedTodayCount int        `json:"scansUsedTodayCount"`
	ScansUsedTodayDate  string     `json:"scansUsedTodayDate,omitempty"`
}

// dateOnly matches the client's toIsoDateOnly: UTC calendar date.
func dateOnly(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
