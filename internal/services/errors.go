package services

import (
	"errors"
	"fmt"
)

// ErrAuthorizationDenied covers guard refusals on single objects, such as
// can-create checks returning false. List scoping never produces it: a
// resource outside an actor's visibility is reported as not found, so its
// existence does not leak.
var ErrAuthorizationDenied = errors.New("authorization denied")

// ErrNotFound wraps visibility misses and plain missing rows alike.
var ErrNotFound = errors.New("not found")

// ProfileResolutionError means a user holds zero or more than one role row.
// It is fatal for the request; the engine never picks a role silently.
type ProfileResolutionError struct {
	UserID uint
	Rows   int
}

func (err *ProfileResolutionError) Error() string {
	return fmt.Sprintf("user %d has %d profile rows, expected exactly 1", err.UserID, err.Rows)
}

// Transition rule identifiers reported with InvalidTransitionError.
const (
	RuleDuplicateJobCandidate = "duplicate_job_candidate"
	RuleSameJobMove           = "same_job_move"
	RuleCrossOrgStatus        = "cross_org_status"
	RuleCrossOrgTargetJob     = "cross_org_target_job"
	RuleNotPendingStart       = "not_pending_start"
	RuleShortlistedDelete     = "shortlisted_not_deletable"
	RuleLiveProposalsArchive  = "candidate_has_live_proposals"
)

// InvalidTransitionError reports a structural rule violated by a proposal
// move or status change. Recoverable: the caller may retry with corrected
// input.
type InvalidTransitionError struct {
	Rule   string
	Detail string
}

func (err *InvalidTransitionError) Error() string {
	if err.Detail == "" {
		return "invalid transition: " + err.Rule
	}
	return fmt.Sprintf("invalid transition (%s): %s", err.Rule, err.Detail)
}

// IntegrityConflictError surfaces unique-constraint violations as validation
// errors instead of crashes.
type IntegrityConflictError struct {
	Constraint string
	Detail     string
}

func (err *IntegrityConflictError) Error() string {
	if err.Detail == "" {
		return "integrity conflict: " + err.Constraint
	}
	return fmt.Sprintf("integrity conflict (%s): %s", err.Constraint, err.Detail)
}

// MissingExchangeRateError aborts a pipeline aggregation when a candidate's
// salary currency has no rate. Never skipped silently.
type MissingExchangeRateError struct {
	Currency string
}

func (err *MissingExchangeRateError) Error() string {
	return fmt.Sprintf("no exchange rate for currency %q", err.Currency)
}

func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

func IsIntegrityConflict(err error) bool {
	var conflictErr *IntegrityConflictError
	return errors.As(err, &conflictErr)
}

func IsProfileResolution(err error) bool {
	var profileErr *ProfileResolutionError
	return errors.As(err, &profileErr)
}
