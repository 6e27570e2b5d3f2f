// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package errs defines the small, closed set of error kinds shared by
the dataset parsers and the device/transmit layers. None of them are
panics: every operation that can fail returns one of these wrapped in
context via fmt.Errorf("...: %w", ...), following the same sentinel-
error idiom used throughout the pack (compare
gherlein-gocat/pkg/scanner/errors.go).

modulation.DuplicateAlias is the one exception: it is defined in the
modulation package itself since it is the only fatal, process-init-time
error kind and has no business being recoverable here.
*/
package errs

// Kind distinguishes the error categories named in the specification.
// It is carried on every returned error via errors.Is against the
// corresponding sentinel below, or via Of(err) for inspecting one.
type Kind int

const (
	// KindInputFormat covers any unexpected token or shape in a parsed
	// file, including every shape-mismatch path. The user-facing effect
	// is a "Parsing failed." status; the dataset store is left
	// untouched.
	KindInputFormat Kind = iota + 1
	// KindResourceExhausted covers allocation failure, most notably the
	// large hierarchical-dataset slab read.
	KindResourceExhausted
	// KindDeviceMissing covers a required PHY, streaming sub-device, or
	// channel absent from an opened context.
	KindDeviceMissing
	// KindAttributeIO covers an attribute-bus read or write failure at
	// the transport layer.
	KindAttributeIO
	// KindOutOfRange covers a setter argument outside its cached range;
	// no hardware call is attempted for these.
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindInputFormat:
		return "InputFormat"
	case KindResourceExhausted:
		return "ResourceExhausted"
	case KindDeviceMissing:
		return "DeviceMissing"
	case KindAttributeIO:
		return "AttributeIO"
	case KindOutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}

// Error is a typed error carrying a Kind plus a human-readable message.
// Use fmt.Errorf("%w: extra context", err) to add detail while keeping
// errors.Is/errors.As working against the wrapped *Error.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// New creates an *Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Is reports whether target is an *Error with the same Kind, enabling
// errors.Is(err, errs.New(errs.KindInputFormat, "")) style checks
// where only the Kind matters.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Of returns the Kind carried by err, and KindInputFormat's zero
// sibling (0) plus false if err does not wrap an *Error.
func Of(err error) (Kind, bool) {
	var e *Error
	if ok := asError(err, &e); ok {
		return e.Kind, true
	}
	return 0, false
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Sentinel instances for errors.Is comparisons where no extra message
// is needed.
var (
	ErrInputFormat       = New(KindInputFormat, "input format")
	ErrResourceExhausted = New(KindResourceExhausted, "resource exhausted")
	ErrDeviceMissing     = New(KindDeviceMissing, "device missing")
	ErrAttributeIO       = New(KindAttributeIO, "attribute io")
	ErrOutOfRange        = New(KindOutOfRange, "out of range")
)
