// Package errs defines the typed error taxonomy returned by every public
// operation in the object database: the binary codec, the object schema,
// and both backends.
package errs

import "fmt"

// Kind classifies an Error so callers can branch on intent instead of
// matching error strings.
type Kind int

const (
	// Io indicates an underlying read/write I/O failure.
	Io Kind = iota
	// InvalidUtf8 indicates a string field failed UTF-8 decoding.
	InvalidUtf8
	// ObjectNotFound indicates a referenced object is absent.
	ObjectNotFound
	// UnexpectedKind indicates a decoded kind byte disagrees with what the
	// caller expected.
	UnexpectedKind
	// UnmappedKind indicates a kind byte has no defined discriminant.
	UnmappedKind
	// InvalidTimestamp indicates timestamp bytes are outside the
	// representable range.
	InvalidTimestamp
	// InvalidOffset indicates UTC-offset bytes are outside the
	// representable range.
	InvalidOffset
	// InvalidCharacterInKey indicates a key contains a forbidden character.
	InvalidCharacterInKey
	// BackendAlreadyInitialized indicates initialization was attempted
	// against a backend that has already bootstrapped its sentinels.
	BackendAlreadyInitialized
	// BackendSpecific wraps an underlying engine error (filesystem or SQL)
	// that doesn't map to one of the other kinds.
	BackendSpecific
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "Io"
	case InvalidUtf8:
		return "InvalidUtf8"
	case ObjectNotFound:
		return "ObjectNotFound"
	case UnexpectedKind:
		return "UnexpectedKind"
	case UnmappedKind:
		return "UnmappedKind"
	case InvalidTimestamp:
		return "InvalidTimestamp"
	case InvalidOffset:
		return "InvalidOffset"
	case InvalidCharacterInKey:
		return "InvalidCharacterInKey"
	case BackendAlreadyInitialized:
		return "BackendAlreadyInitialized"
	case BackendSpecific:
		return "BackendSpecific"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &errs.Error{Kind: errs.ObjectNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Wrap classifies an opaque I/O error as BackendSpecific, preserving it via
// Unwrap.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return wrap(BackendSpecific, "backend error", err)
}

// IOError wraps a raw I/O failure.
func IOError(err error) *Error {
	return wrap(Io, "i/o error", err)
}

// InvalidUtf8Error reports a non-UTF-8 string field.
func InvalidUtf8Error(bytes []byte) *Error {
	return newf(InvalidUtf8, "invalid utf-8 in string field (%d bytes)", len(bytes))
}

// KindOf is the minimal description of an object kind, used in error
// messages without importing objkind (which would create an import cycle).
type KindOf interface {
	String() string
}

// NotFound reports a missing referenced object.
func NotFound(kind KindOf, oidHex string) *Error {
	return newf(ObjectNotFound, "object not found: kind=%s oid=%s", kind, oidHex)
}

// WrongKind reports a kind mismatch between an expected and actual object
// kind read from storage.
func WrongKind(expected, actual KindOf) *Error {
	return newf(UnexpectedKind, "unexpected kind: expected=%s actual=%s", expected, actual)
}

// Unmapped reports a kind byte with no defined discriminant.
func Unmapped(b byte) *Error {
	return newf(UnmappedKind, "unmapped kind byte: 0x%02x", b)
}

// BadTimestamp reports out-of-range timestamp nanoseconds.
func BadTimestamp(nanos string) *Error {
	return newf(InvalidTimestamp, "timestamp out of representable range: %s", nanos)
}

// BadOffset reports an out-of-range UTC offset.
func BadOffset(seconds int32) *Error {
	return newf(InvalidOffset, "utc offset out of representable range: %d seconds", seconds)
}

// BadKeyChar reports a forbidden character found in a key.
func BadKeyChar(key string, char rune) *Error {
	return newf(InvalidCharacterInKey, "invalid character %q in key %q", char, key)
}

// AlreadyInitialized signals that backend initialization is a no-op because
// the backend's sentinels already exist.
func AlreadyInitialized() *Error {
	return newf(BackendAlreadyInitialized, "backend already initialized")
}
