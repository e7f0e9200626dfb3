package moduleindex

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion is bumped when the serialized layout changes.
const snapshotVersion = 1

// snapshot is the serialized form of an Index. It exists for diagnostics
// (the symbols command); the insertion path always rebuilds from source.
type snapshot struct {
	Version int      `msgpack:"version"`
	Modules []Module `msgpack:"modules"`
}

// Save writes a msgpack snapshot of the index to w.
func (idx *Index) Save(w io.Writer) error {
	snap := snapshot{Version: snapshotVersion, Modules: idx.modules}
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	return nil
}

// Load replaces the index contents with a snapshot previously written by
// Save.
func (idx *Index) Load(r io.Reader) error {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("decoding index: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported index version %d", snap.Version)
	}
	idx.modules = snap.Modules
	return nil
}
