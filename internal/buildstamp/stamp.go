// Package buildstamp memoizes the options a generated artifact was last
// produced with, so a rebuild with unchanged options can be skipped. The
// stamp lives in a small file next to the artifact.
package buildstamp

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/spf13/afero"
)

// Stamp records the options of one generation run.
type Stamp struct {
	// Version is the generator version the artifact was produced by.
	Version string `json:"version"`
	// Debug records whether debug output was requested.
	Debug bool `json:"debug"`
	// Directives is the flattened, ordered directive set that went into
	// the artifact.
	Directives []string `json:"directives"`
}

// Encode returns the canonical form of s. Field order is fixed by the
// struct, so equal stamps always encode to equal bytes.
func (s Stamp) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// Check compares the stamp file at path against want. It reports
// force=true when the artifact must be rebuilt: the stamp file is missing,
// unreadable, or does not match want.
//
// A mismatched stamp is removed before Check returns, so an interrupted
// rebuild cannot leave a stale stamp that looks consistent on the next
// run; the artifact stays marked dirty until Write records a successful
// rebuild.
func Check(fsys afero.Fs, path string, want Stamp) (force bool, err error) {
	wantRaw, err := want.Encode()
	if err != nil {
		return false, err
	}
	got, err := afero.ReadFile(fsys, path)
	if err != nil {
		// Missing or unreadable stamp: rebuild everything.
		return true, nil
	}
	if bytes.Equal(got, wantRaw) {
		return false, nil
	}
	if err := fsys.Remove(path); err != nil {
		return true, err
	}
	return true, nil
}

// Invalidate removes the stamp at path so the next run rebuilds regardless
// of recorded options. Removing an already absent stamp is not an error.
func Invalidate(fsys afero.Fs, path string) error {
	if err := fsys.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Write records s at path. Call it only after the artifact itself was
// written successfully.
func Write(fsys afero.Fs, path string, s Stamp) error {
	raw, err := s.Encode()
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, raw, 0644)
}
