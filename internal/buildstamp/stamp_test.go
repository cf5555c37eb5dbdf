package buildstamp

import (
	"testing"

	"github.com/spf13/afero"
)

const stampPath = "build/.mkcygcall.stamp"

func testStamp() Stamp {
	return Stamp{
		Version:    "1.1.0",
		Debug:      false,
		Directives: []string{"dll=cygwin1.dll", "proc=cygwin_conv_path"},
	}
}

func TestCheckMissingStampForcesRebuild(t *testing.T) {
	fsys := afero.NewMemMapFs()

	force, err := Check(fsys, stampPath, testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if !force {
		t.Error("missing stamp must force a rebuild")
	}
}

func TestCheckMatchingStampSkipsRebuild(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := Write(fsys, stampPath, testStamp()); err != nil {
		t.Fatal(err)
	}

	force, err := Check(fsys, stampPath, testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if force {
		t.Error("matching stamp must not force a rebuild")
	}
}

func TestCheckMismatchedStampForcesRebuildAndRemovesStamp(t *testing.T) {
	fsys := afero.NewMemMapFs()
	old := testStamp()
	old.Debug = true
	if err := Write(fsys, stampPath, old); err != nil {
		t.Fatal(err)
	}

	force, err := Check(fsys, stampPath, testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if !force {
		t.Error("mismatched stamp must force a rebuild")
	}
	// The stale stamp must already be gone: if the rebuild is interrupted
	// the next run has to start from scratch.
	if exists, _ := afero.Exists(fsys, stampPath); exists {
		t.Error("mismatched stamp file was not removed before rebuild")
	}
}

func TestCheckDirectiveChangeForcesRebuild(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := Write(fsys, stampPath, testStamp()); err != nil {
		t.Fatal(err)
	}

	want := testStamp()
	want.Directives = append(want.Directives, "proc=cygwin_internal")
	force, err := Check(fsys, stampPath, want)
	if err != nil {
		t.Fatal(err)
	}
	if !force {
		t.Error("changed directive set must force a rebuild")
	}
}

func TestCheckUnreadableStampForcesRebuild(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// A directory where the stamp file should be makes the read fail.
	if err := fsys.MkdirAll(stampPath, 0755); err != nil {
		t.Fatal(err)
	}

	force, err := Check(fsys, stampPath, testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if !force {
		t.Error("unreadable stamp must force a rebuild")
	}
}

func TestInvalidate(t *testing.T) {
	fsys := afero.NewMemMapFs()

	// Absent stamp: not an error.
	if err := Invalidate(fsys, stampPath); err != nil {
		t.Fatal(err)
	}

	if err := Write(fsys, stampPath, testStamp()); err != nil {
		t.Fatal(err)
	}
	if err := Invalidate(fsys, stampPath); err != nil {
		t.Fatal(err)
	}
	if exists, _ := afero.Exists(fsys, stampPath); exists {
		t.Error("Invalidate left the stamp file behind")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := testStamp().Encode()
	if err != nil {
		t.Fatal(err)
	}
	b, err := testStamp().Encode()
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Errorf("Encode not deterministic: %s vs %s", a, b)
	}
}
