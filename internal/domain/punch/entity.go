package punch

import (
	"time"
)

// RecordType is a raw clock action. The set is closed: handlers validate
// inbound strings against it and everything past the DTO layer works on the
// typed constants, so the transition table below can be exhaustive.
type RecordType string

const (
	TypeClockIn    RecordType = "clock_in"
	TypeClockOut   RecordType = "clock_out"
	TypeBreakStart RecordType = "break_start"
	TypeBreakEnd   RecordType = "break_end"
)

// RecordTypes lists every valid record type, in display order.
var RecordTypes = []RecordType{TypeClockIn, TypeClockOut, TypeBreakStart, TypeBreakEnd}

// IsValid reports whether t is one of the closed record types.
func (t RecordType) IsValid() bool {
	switch t {
	case TypeClockIn, TypeClockOut, TypeBreakStart, TypeBreakEnd:
		return true
	}
	return false
}

// Source tags where a punch came from. Informational only, never used in
// computation.
type Source string

const (
	SourceWeb       Source = "web"
	SourceMobile    Source = "mobile"
	SourceBiometric Source = "biometric"
	SourceManual    Source = "manual"
	SourceImport    Source = "import"
)

// Sources lists every valid punch source.
var Sources = []Source{SourceWeb, SourceMobile, SourceBiometric, SourceManual, SourceImport}

func (s Source) IsValid() bool {
	switch s {
	case SourceWeb, SourceMobile, SourceBiometric, SourceManual, SourceImport:
		return true
	}
	return false
}

// PunchEvent is one raw clock action. Events are immutable once created;
// corrections are separate adjustment records handled by the approval
// workflow, never in-place edits.
type PunchEvent struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	RecordType      RecordType
	RecordedAt      time.Time
	LocationAddress *string
	Source          Source
	CreatedAt       time.Time

	// DTO
	EmployeeName *string
}

// DayStatus is the legal state of an employee's day, derived from the ordered
// punch sequence. It is never persisted.
type DayStatus string

const (
	StatusNotStarted DayStatus = "not_started"
	StatusWorking    DayStatus = "working"
	StatusOnBreak    DayStatus = "break"
	StatusFinished   DayStatus = "finished"
)

// Label returns the status name used in user-facing rejection messages.
func (s DayStatus) Label() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusWorking:
		return "working"
	case StatusOnBreak:
		return "on break"
	case StatusFinished:
		return "finished"
	}
	return string(s)
}
