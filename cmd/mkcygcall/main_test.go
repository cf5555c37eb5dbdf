package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/winposix/winposix/pkg/logger"
)

const testDirectives = `dll: cygwin1.dll
dllfunc: cygwinDLLName
package: cygwin
build: windows
procs:
  - cygwin_dll_init
  - cygwin_conv_path
`

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "procs.yml", []byte(testDirectives), 0644); err != nil {
		t.Fatal(err)
	}
	return fsys
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(raw)
}

func TestRunGeneratesOutputAndStamp(t *testing.T) {
	fsys := newTestFs(t)

	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err != nil {
		t.Fatal(err)
	}

	out := readFile(t, fsys, "zproc_windows.go")
	if !strings.Contains(out, "// Code generated by mkcygcall; DO NOT EDIT.") {
		t.Errorf("output missing generated-code header:\n%s", out)
	}
	if !strings.Contains(out, `modcygwin1.NewProc("cygwin_conv_path")`) {
		t.Errorf("output missing proc declaration:\n%s", out)
	}
	if exists, _ := afero.Exists(fsys, stampName); !exists {
		t.Error("stamp file was not written")
	}
}

func TestRunSkipsWhenStampMatches(t *testing.T) {
	fsys := newTestFs(t)

	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err != nil {
		t.Fatal(err)
	}

	// Hand-edit the output; an unchanged stamp must leave it alone.
	if err := afero.WriteFile(fsys, "zproc_windows.go", []byte("// edited\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, fsys, "zproc_windows.go"); got != "// edited\n" {
		t.Errorf("matching stamp must skip regeneration, got:\n%s", got)
	}
}

func TestRunRegeneratesWhenOptionsChange(t *testing.T) {
	fsys := newTestFs(t)

	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err != nil {
		t.Fatal(err)
	}
	// Same directives, debug flipped on: the stamp no longer matches.
	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, true); err != nil {
		t.Fatal(err)
	}
	if out := readFile(t, fsys, "zproc_windows.go"); !strings.Contains(out, "procNames") {
		t.Errorf("debug run did not regenerate output:\n%s", out)
	}
}

func TestRunRegeneratesWhenOutputMissing(t *testing.T) {
	fsys := newTestFs(t)

	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err != nil {
		t.Fatal(err)
	}
	if err := fsys.Remove("zproc_windows.go"); err != nil {
		t.Fatal(err)
	}
	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err != nil {
		t.Fatal(err)
	}
	if exists, _ := afero.Exists(fsys, "zproc_windows.go"); !exists {
		t.Error("missing output was not regenerated despite matching stamp")
	}
}

func TestRunForce(t *testing.T) {
	fsys := newTestFs(t)

	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, "zproc_windows.go", []byte("// edited\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", true, false); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, fsys, "zproc_windows.go"); got == "// edited\n" {
		t.Error("force run must regenerate the output")
	}
}

func TestRunBadDirectives(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "procs.yml", []byte("dll: cygwin1.dll\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(fsys, logger.NewNopLogger(), "procs.yml", "zproc_windows.go", false, false); err == nil {
		t.Error("expected an error for an incomplete directive file")
	}
	if exists, _ := afero.Exists(fsys, "zproc_windows.go"); exists {
		t.Error("no output may be written for bad directives")
	}
}
