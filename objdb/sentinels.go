package objdb

// EmptyRegisterOID is the OID of a Register with zero entries. Computed
// at init time rather than hardcoded, so it always agrees with whatever
// this package's canonical encoding actually produces.
var EmptyRegisterOID OID

// EmptySaveRegisterOID is the OID of a SaveRegister with zero entries.
var EmptySaveRegisterOID OID

// RootCommitOID is the OID of the distinguished root commit: register and
// saves both empty, no parents, Unix-epoch timestamp, every string field
// blank.
var RootCommitOID OID

// RootCommit is the distinguished root commit object itself.
var RootCommit *Commit

func init() {
	emptyReg := NewRegister()
	oid, _, err := emptyReg.Encode()
	if err != nil {
		panic("objdb: failed to encode empty register: " + err.Error())
	}
	EmptyRegisterOID = oid

	emptySaveReg := NewSaveRegister()
	oid, _, err = emptySaveReg.Encode()
	if err != nil {
		panic("objdb: failed to encode empty save-register: " + err.Error())
	}
	EmptySaveRegisterOID = oid

	RootCommit = &Commit{
		Register: EmptyRegisterOID,
		Saves:    EmptySaveRegisterOID,
		Date:     Epoch(),
	}
	oid, _, err = RootCommit.Encode()
	if err != nil {
		panic("objdb: failed to encode root commit: " + err.Error())
	}
	RootCommitOID = oid
}
