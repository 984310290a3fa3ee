package model

import (
	"fmt"
	"strings"
)

// Status is the lifecycle stage of a note.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Statuses lists every recognized status in cycle order.
var Statuses = []Status{StatusActive, StatusCompleted, StatusArchived}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// DisplayName is the human label shown in listings.
func (s Status) DisplayName() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	case StatusArchived:
		return "Archived"
	}
	return string(s)
}

// ParseStatus reads a status typed by a user. Matching ignores case and
// surrounding space.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q (want active, completed or archived)", raw)
	}
	return s, nil
}

// StatusInfo describes the transition offered for a note in a given status.
type StatusInfo struct {
	Next        Status
	ActionLabel string
}

var transitions = map[Status]StatusInfo{
	StatusActive:    {Next: StatusCompleted, ActionLabel: "mark complete"},
	StatusCompleted: {Next: StatusArchived, ActionLabel: "archive"},
	StatusArchived:  {Next: StatusActive, ActionLabel: "restore to active"},
}

// NextStatusInfo returns the successor of current along the fixed cycle
// active -> completed -> archived -> active.
//
// Any value outside the cycle gets the active row. That mirrors how the
// backend treats notes without a usable status, and may be worth revisiting.
func NextStatusInfo(current Status) StatusInfo {
	if info, ok := transitions[current]; ok {
		return info
	}
	return transitions[StatusActive]
}
