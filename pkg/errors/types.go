// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import "fmt"

// Status is an error status code.
type Status uint64

const (
	// OK means nothing went wrong.
	OK Status = 200

	// BadRequest means the input could not be understood.
	BadRequest Status = 400

	// InputUnavailable means the input file is missing, unreadable, or
	// failed mid-read.
	InputUnavailable Status = 404

	// InternalError means something went wrong that should not have.
	InternalError Status = 500

	// UnknownError means the cause of the failure is not known.
	UnknownError Status = 520
)

var statusNames = map[Status]string{
	OK:               "ok",
	BadRequest:       "bad request",
	InputUnavailable: "input unavailable",
	InternalError:    "internal error",
	UnknownError:     "unknown error",
}

// String returns the name of the status.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("status %d", uint64(s))
}

// CallSite is a location in the source where an error was created or
// wrapped.
type CallSite struct {
	FuncName string
	File     string
	Line     int64
}

// Error is an error with a status code, an optional cause, and the call
// sites it passed through.
type Error struct {
	Message   string
	Code      Status
	Cause     *Error
	CallStack []*CallSite
}
