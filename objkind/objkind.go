// Package objkind defines the stable, wire-committed kind discriminants used
// throughout the object database: the top-level ObjectKind tag written in
// every object's header, and the two secondary enums (RegisterEntryKind,
// SaveParentKind) that appear inside object payloads.
//
// Each enum is a small closed set of u8 values. Adding a variant must use an
// unused value; removing or renumbering one breaks every object ever stored.
package objkind

import (
	"fmt"

	"github.com/braid-db/braid/errs"
)

// ObjectKind is the single-byte discriminator stored in every object's
// 5-byte header.
type ObjectKind uint8

const (
	Register ObjectKind = iota
	Commit
	Save
	SaveRegister
)

func (k ObjectKind) String() string {
	switch k {
	case Register:
		return "Register"
	case Commit:
		return "Commit"
	case Save:
		return "Save"
	case SaveRegister:
		return "SaveRegister"
	default:
		return fmt.Sprintf("ObjectKind(%d)", uint8(k))
	}
}

// ParseObjectKind decodes a wire byte, rejecting anything not in the table
// above with a typed UnmappedKind error.
func ParseObjectKind(b byte) (ObjectKind, error) {
	k := ObjectKind(b)
	switch k {
	case Register, Commit, Save, SaveRegister:
		return k, nil
	default:
		return 0, errs.Unmapped(b)
	}
}

// RegisterEntryKind marks what a Register entry's target OID refers to.
type RegisterEntryKind uint8

const (
	Executable RegisterEntryKind = iota
	Content
	SubRegister
)

func (k RegisterEntryKind) String() string {
	switch k {
	case Executable:
		return "Executable"
	case Content:
		return "Content"
	case SubRegister:
		return "Register"
	default:
		return fmt.Sprintf("RegisterEntryKind(%d)", uint8(k))
	}
}

// ParseRegisterEntryKind decodes a wire byte for a register entry.
func ParseRegisterEntryKind(b byte) (RegisterEntryKind, error) {
	k := RegisterEntryKind(b)
	switch k {
	case Executable, Content, SubRegister:
		return k, nil
	default:
		return 0, errs.Unmapped(b)
	}
}

// SaveParentKind distinguishes what a Save's parent OID points to.
type SaveParentKind uint8

const (
	ParentSave SaveParentKind = iota
	ParentCommit
)

func (k SaveParentKind) String() string {
	switch k {
	case ParentSave:
		return "Save"
	case ParentCommit:
		return "Commit"
	default:
		return fmt.Sprintf("SaveParentKind(%d)", uint8(k))
	}
}

// ParseSaveParentKind decodes a wire byte for a save's parent kind.
func ParseSaveParentKind(b byte) (SaveParentKind, error) {
	k := SaveParentKind(b)
	switch k {
	case ParentSave, ParentCommit:
		return k, nil
	default:
		return 0, errs.Unmapped(b)
	}
}
