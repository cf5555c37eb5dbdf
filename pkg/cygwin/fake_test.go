package cygwin

import (
	"fmt"
	"strings"
)

// fakeConv implements conv with a minimal model of a layer installation:
// the install root at C:\cygwin64 and drive letters mounted under
// /cygdrive. It records the operation code of the most recent conversion
// so tests can assert on resolver output.
type fakeConv struct {
	lastOp  convFlag
	pids    map[int]uint32
	winpids map[uint32]int
}

const (
	fakeRoot     = `C:\cygwin64`
	fakeCygdrive = "/cygdrive"
)

func newFakeLayer() (*Layer, *fakeConv) {
	f := &fakeConv{
		pids:    make(map[int]uint32),
		winpids: make(map[uint32]int),
	}
	return &Layer{c: f}, f
}

func (f *fakeConv) convPath(op convFlag, path string) (string, error) {
	f.lastOp = op
	switch op & ccpConvTypeMask {
	case ccpWinAToPosix, ccpWinWToPosix:
		return f.toPosix(path), nil
	default:
		return f.toWindows(path), nil
	}
}

func (f *fakeConv) convPathBytes(op convFlag, path []byte) ([]byte, error) {
	out, err := f.convPath(op, string(path))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func (f *fakeConv) toPosix(path string) string {
	if rest, ok := strings.CutPrefix(path, fakeRoot); ok {
		p := strings.ReplaceAll(rest, `\`, "/")
		if p == "" {
			p = "/"
		}
		return p
	}
	if len(path) >= 2 && path[1] == ':' {
		drive := strings.ToLower(path[:1])
		rest := strings.ReplaceAll(path[2:], `\`, "/")
		return fakeCygdrive + "/" + drive + rest
	}
	return strings.ReplaceAll(path, `\`, "/")
}

func (f *fakeConv) toWindows(path string) string {
	if rest, ok := strings.CutPrefix(path, fakeCygdrive+"/"); ok {
		drive := strings.ToUpper(rest[:1])
		return drive + ":" + strings.ReplaceAll(rest[1:], "/", `\`)
	}
	if strings.HasPrefix(path, "/") {
		return fakeRoot + strings.ReplaceAll(path, "/", `\`)
	}
	return strings.ReplaceAll(path, "/", `\`)
}

func (f *fakeConv) winpidToPid(winpid uint32) (int, error) {
	pid, ok := f.winpids[winpid]
	if !ok {
		// The runtime reports missing processes as -1, not as an error.
		return -1, nil
	}
	return pid, nil
}

func (f *fakeConv) pidToWinpid(pid int) (uint32, error) {
	winpid, ok := f.pids[pid]
	if !ok {
		return 0, fmt.Errorf("pid %d: %w", pid, ESRCH)
	}
	return winpid, nil
}
