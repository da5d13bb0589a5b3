package strava

import (
	"fmt"
)

// AuthError means the credential could not be exchanged or refreshed. The
// sync loop skips the user for the cycle instead of failing the run.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("strava auth: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError is a failed activity-feed page fetch. Reconciliation for the
// user stops at the failing page; earlier pages stay committed.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("strava fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
