package benchmark

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/gomg/multigrid"
)

/*
	Benchmark persistence for solver states. gob keeps float64 arrays
	bit-exact through a store/read round trip, which the comparison step
	depends on. The target directory is always passed in explicitly.
*/

// Store writes the state to dir/name.gob, creating dir if needed.
func Store(dir, name string, st *multigrid.State) (path string, err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	path = filepath.Join(dir, name+".gob")
	var fh *os.File
	if fh, err = os.Create(path); err != nil {
		return
	}
	defer fh.Close()
	if err = gob.NewEncoder(fh).Encode(st); err != nil {
		err = fmt.Errorf("unable to encode state to %s: %w", path, err)
	}
	return
}

// Read loads a previously stored state.
func Read(path string) (st *multigrid.State, err error) {
	var fh *os.File
	if fh, err = os.Open(path); err != nil {
		return
	}
	defer fh.Close()
	st = &multigrid.State{}
	if err = gob.NewDecoder(fh).Decode(st); err != nil {
		err = fmt.Errorf("unable to decode state from %s: %w", path, err)
		st = nil
	}
	return
}
