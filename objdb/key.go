package objdb

import "github.com/braid-db/braid/errs"

// RegisterEntryKey is a validated Register entry name: it forbids NUL,
// newline, carriage-return, and '/' (no path separators within a single
// entry name; nesting is expressed with sub-Registers instead).
type RegisterEntryKey string

// NewRegisterEntryKey validates s and returns it as a RegisterEntryKey.
func NewRegisterEntryKey(s string) (RegisterEntryKey, error) {
	for _, c := range s {
		if isForbiddenPathChar(c) {
			return "", errs.BadKeyChar(s, c)
		}
	}
	return RegisterEntryKey(s), nil
}

// SaveEntryKey is a validated SaveRegister entry name: it forbids NUL,
// newline, and carriage-return, but permits '/' so it can carry a
// directory-structured path as a single opaque string.
type SaveEntryKey string

// NewSaveEntryKey validates s and returns it as a SaveEntryKey.
func NewSaveEntryKey(s string) (SaveEntryKey, error) {
	for _, c := range s {
		if isForbiddenKeyChar(c) {
			return "", errs.BadKeyChar(s, c)
		}
	}
	return SaveEntryKey(s), nil
}

func isForbiddenKeyChar(c rune) bool {
	return c == 0 || c == '\n' || c == '\r'
}

func isForbiddenPathChar(c rune) bool {
	return c == '/' || isForbiddenKeyChar(c)
}
