package models

import "fmt"

// Contact statuses.
const (
	ContactStatusNew        = "New"
	ContactStatusInProgress = "In Progress"
	ContactStatusResolved   = "Resolved"
	ContactStatusArchived   = "Archived"
)

// Career application statuses.
const (
	CareerStatusPending     = "pending"
	CareerStatusReviewed    = "reviewed"
	CareerStatusShortlisted = "shortlisted"
	CareerStatusRejected    = "rejected"
	CareerStatusHired       = "hired"
)

// Internship application statuses.
const (
	InternshipStatusPending    = "pending"
	InternshipStatusApproved   = "approved"
	InternshipStatusInProgress = "in-progress"
	InternshipStatusCompleted  = "completed"
	InternshipStatusCancelled  = "cancelled"
)

// TransitionTable maps a status to the set of statuses reachable from it.
// A status absent from the table is not a valid state at all.
type TransitionTable map[string][]string

// ContactTransitions moves a contact forward through triage. Archived is
// terminal; anything may be archived directly.
var ContactTransitions = TransitionTable{
	ContactStatusNew:        {ContactStatusInProgress, ContactStatusResolved, ContactStatusArchived},
	ContactStatusInProgress: {ContactStatusResolved, ContactStatusArchived},
	ContactStatusResolved:   {ContactStatusArchived},
	ContactStatusArchived:   {},
}

var CareerTransitions = TransitionTable{
	CareerStatusPending:     {CareerStatusReviewed, CareerStatusRejected},
	CareerStatusReviewed:    {CareerStatusShortlisted, CareerStatusRejected},
	CareerStatusShortlisted: {CareerStatusHired, CareerStatusRejected},
	CareerStatusRejected:    {},
	CareerStatusHired:       {},
}

var InternshipTransitions = TransitionTable{
	InternshipStatusPending:    {InternshipStatusApproved, InternshipStatusCancelled},
	InternshipStatusApproved:   {InternshipStatusInProgress, InternshipStatusCancelled},
	InternshipStatusInProgress: {InternshipStatusCompleted, InternshipStatusCancelled},
	InternshipStatusCompleted:  {},
	InternshipStatusCancelled:  {},
}

// InvalidTransitionError reports a status change the transition table forbids.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %q to %q", e.From, e.To)
}

// CheckTransition validates from -> to against the table. It returns an
// *InvalidTransitionError both for unknown target statuses and for legal
// statuses that are not reachable from the current one.
func (t TransitionTable) CheckTransition(from, to string) error {
	next, ok := t[from]
	if !ok {
		return &InvalidTransitionError{From: from, To: to}
	}
	if _, known := t[to]; !known {
		return &InvalidTransitionError{From: from, To: to}
	}
	for _, s := range next {
		if s == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}
