package fsbackend

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/braid-db/braid/internal/buf"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

// Entry is one object discovered by List: its OID, wire kind, and
// payload length (the header's length field, not the file size).
type Entry struct {
	OID     objdb.OID
	Kind    objkind.ObjectKind
	PayloadLen uint32
}

// Iter walks every well-formed object file under the backend's root.
// Malformed or non-object files are silently skipped, matching the
// directory scanner's tolerance for stray files in the shard directories.
// Content files have no header: one shorter than five bytes or whose
// first byte is not a kind byte is skipped, and any other is reported
// with whatever kind and length its first five bytes decode to.
type Iter struct {
	entries []Entry
	idx     int
	err     error
}

// Next advances to the next entry, returning false once exhausted.
func (it *Iter) Next() bool {
	if it.idx >= len(it.entries) {
		return false
	}
	it.idx++
	return true
}

// Err reports any error encountered while listing; always nil for Iter,
// since malformed entries are skipped rather than surfaced.
func (it *Iter) Err() error { return it.err }

// Entry returns the entry Next just advanced to.
func (it *Iter) Entry() Entry { return it.entries[it.idx-1] }

// List enumerates every header-carrying object stored under the
// backend's root, sorted by OID (see Iter for how content files fare).
func (b *Backend) List() (*Iter, error) {
	shardDirs, err := os.ReadDir(b.Root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, shard := range shardDirs {
		if !shard.IsDir() || len(shard.Name()) != 2 {
			continue
		}
		hi := shard.Name()
		if !buf.HexNibbleValid(hi[0]) || !buf.HexNibbleValid(hi[1]) {
			continue
		}
		files, err := os.ReadDir(filepath.Join(b.Root, hi))
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || len(f.Name()) != (objdb.Size*2-2) {
				continue
			}
			entry, ok := readEntry(b.Root, hi, f.Name())
			if !ok {
				continue
			}
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OID.String() < entries[j].OID.String()
	})
	return &Iter{entries: entries}, nil
}

func readEntry(root, hi, lo string) (Entry, bool) {
	for _, c := range lo {
		if !buf.HexNibbleValid(byte(c)) {
			return Entry{}, false
		}
	}
	oid, err := objdb.ParseOID(hi + lo)
	if err != nil {
		return Entry{}, false
	}

	f, err := os.Open(filepath.Join(root, hi, lo))
	if err != nil {
		return Entry{}, false
	}
	defer f.Close()

	var header [5]byte
	n, err := f.Read(header[:])
	if err != nil || n < 5 {
		return Entry{}, false
	}
	kind, err := objkind.ParseObjectKind(header[0])
	if err != nil {
		return Entry{}, false
	}
	return Entry{OID: oid, Kind: kind, PayloadLen: buf.U32LE(header[1:5])}, true
}
