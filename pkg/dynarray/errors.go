// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package dynarray

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Outcome taxonomy. Every fallible operation either succeeds (nil) or
// reports exactly one of these kinds, wrapped with operation context.
// Match with errors.Is.
var (
	// ErrOutOfMemory reports a reallocation that would exceed the array's
	// capacity budget. The prior buffer and contents are always retained.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrOutOfBounds reports an index or position outside the live range.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidSize reports a zero or negative size/capacity request.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidIterator reports a position that can never denote a slot
	// (a negative offset). Offsets are re-validated against the current
	// size at use time, so reallocation alone cannot stale them.
	ErrInvalidIterator = errors.New("invalid iterator")
)

// opError is a failed operation outcome: the kind sentinel, the operation
// name, optional redactable context, and the source location that recorded
// it.
type opError struct {
	kind    error
	op      string
	context redact.RedactableString
	file    string
	line    int
}

func (e *opError) Error() string {
	if e.context == "" {
		return fmt.Sprintf("%s: %v", e.op, e.kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.op, e.kind, e.context.StripMarkers())
}

func (e *opError) Unwrap() error { return e.kind }

// failf builds an operation outcome, capturing the call site as the
// outcome's source location.
func failf(op string, kind error, format string, args ...interface{}) error {
	e := &opError{kind: kind, op: op}
	if format != "" {
		e.context = redact.Sprintf(format, args...)
	}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.file, e.line = trimPath(file), line
	}
	return e
}

// trimPath keeps the last two components of a source path.
func trimPath(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		if j := strings.LastIndexByte(path[:i], '/'); j >= 0 {
			return path[j+1:]
		}
	}
	return path
}

// record stores the outcome of the most recent operation and returns it.
// A nil err clears prior error state.
func (a *Array[T]) record(err error) error {
	a.lastErr = err
	return err
}

// LastError returns the outcome of the most recent fallible operation, or
// nil if it succeeded. It is overwritten by every operation.
func (a *Array[T]) LastError() error { return a.lastErr }

// Diagnostic renders err as a formatted one-line message of the shape
//
//	error: <kind>[: <context>] @ <file>:<line>
//
// for outcomes produced by this package, falling back to "error: <err>"
// for anything else. Emission is entirely up to the caller; the package
// never prints on its own.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var e *opError
	if !errors.As(err, &e) {
		return fmt.Sprintf("error: %v", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "error: %v: %s", e.kind, e.op)
	if e.context != "" {
		fmt.Fprintf(&b, ": %s", e.context.StripMarkers())
	}
	if e.file != "" {
		fmt.Fprintf(&b, " @ %s:%d", e.file, e.line)
	}
	return b.String()
}
