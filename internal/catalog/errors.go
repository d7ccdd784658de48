// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrCatalogUnavailable is the single failure kind callers need to handle:
// the catalog could not produce a usable list of movies.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Failure reasons carried by UnavailableError. They double as metric labels.
const (
	ReasonTransport   = "transport"
	ReasonTimeout     = "timeout"
	ReasonStatus      = "status"
	ReasonDecode      = "decode"
	ReasonCircuitOpen = "rejected"
	ReasonCanceled    = "canceled"
)

// UnavailableError describes why a discovery failed. It matches
// ErrCatalogUnavailable under errors.Is.
//
// The message never contains the request URL, which carries the credential.
type UnavailableError struct {
	Reason     string
	StatusCode int    // set when Reason is ReasonStatus
	Detail     string // redacted upstream message
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s: HTTP %d: %s", ErrCatalogUnavailable, e.Reason, e.StatusCode, e.Detail)
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrCatalogUnavailable, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrCatalogUnavailable, e.Reason, e.Detail)
}

// Is reports whether target is ErrCatalogUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

// IsCredentialRejected reports whether err is the catalog refusing the
// credential (401 or 403). That is a problem with one user's key, not with
// the catalog, so the circuit breaker does not count it as a failure.
func IsCredentialRejected(err error) bool {
	var ue *UnavailableError
	if !errors.As(err, &ue) || ue.Reason != ReasonStatus {
		return false
	}
	return ue.StatusCode == http.StatusUnauthorized || ue.StatusCode == http.StatusForbidden
}

// IsCallerCanceled reports whether err is the inbound request going away
// before the catalog answered. Like a rejected credential, it says nothing
// about catalog health.
func IsCallerCanceled(err error) bool {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue.Reason == ReasonCanceled
	}
	return errors.Is(err, context.Canceled)
}
