package main

import "github.com/braid-db/braid/backend"

// parseRefKind maps the CLI's lowercase kind names onto backend.RefKind.
func parseRefKind(s string) (backend.RefKind, bool) {
	switch s {
	case "content":
		return backend.RefContent, true
	case "register":
		return backend.RefRegister, true
	case "commit":
		return backend.RefCommit, true
	case "save":
		return backend.RefSave, true
	case "saveregister":
		return backend.RefSaveRegister, true
	default:
		return 0, false
	}
}
