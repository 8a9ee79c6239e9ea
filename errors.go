// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package havoctl

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ActivityError is the single failure signal surfaced by every action and
// probe. Parameter validation failures and provider errors both end up
// here; the orchestrator owns any recovery policy.
type ActivityError struct {
	Message string
	Cause   error
}

func (e *ActivityError) Error() string {
	return e.Message
}

func (e *ActivityError) Unwrap() error {
	return e.Cause
}

// Failf builds an ActivityError from a format string. Used for parameter
// validation and target resolution failures.
func Failf(format string, args ...any) *ActivityError {
	return &ActivityError{Message: fmt.Sprintf(format, args...)}
}

// FailWith wraps a provider error into an ActivityError. The provider's
// own message is appended so the orchestrator sees what AWS reported.
func FailWith(cause error, format string, args ...any) *ActivityError {
	return &ActivityError{
		Message: fmt.Sprintf(format, args...) + ": " + APIErrorMessage(cause),
		Cause:   cause,
	}
}

// APIErrorMessage extracts the service-reported message from an SDK error,
// falling back to the plain error string for transport-level failures.
func APIErrorMessage(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorMessage()
	}
	return err.Error()
}

// IsActivityError reports whether err is (or wraps) an ActivityError.
func IsActivityError(err error) bool {
	var ae *ActivityError
	return errors.As(err, &ae)
}
