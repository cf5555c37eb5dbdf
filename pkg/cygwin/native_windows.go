//go:build windows

package cygwin

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/winposix/winposix/common"
)

//go:generate go run ../../cmd/mkcygcall -config procs.yml -output zproc_windows.go

// cygwinDLLName returns the runtime DLL to load, honoring the WINPOSIX_DLL
// override.
func cygwinDLLName() string {
	if p := os.Getenv(common.DLLEnv); p != "" {
		return p
	}
	return "cygwin1.dll"
}

// nativeConv calls into the compatibility layer runtime through the lazily
// loaded procs declared in zproc_windows.go.
type nativeConv struct {
	initOnce sync.Once
	initErr  error
}

func newNativeConv() conv { return &nativeConv{} }

// ensureInit loads the runtime DLL and runs its per-process
// initialization. cygwin_dll_init must run before any other export is
// usable when the host process was not itself started under the layer.
func (n *nativeConv) ensureInit() error {
	n.initOnce.Do(func() {
		if err := modcygwin1.Load(); err != nil {
			n.initErr = fmt.Errorf("loading %s: %w", cygwinDLLName(), err)
			return
		}
		for _, p := range []*windows.LazyProc{
			procCygwinDllInit, procCygwinConvPath,
			procCygwinWinpidToPid, procCygwinInternal, procErrno,
		} {
			if err := p.Find(); err != nil {
				n.initErr = err
				return
			}
		}
		procCygwinDllInit.Call()
	})
	return n.initErr
}

// lastErrno reads the layer's errno through the runtime's __errno export.
// The layer maintains its own errno and never touches the Win32 last-error
// value, so this is the only way to learn why a call failed. errno is
// thread-local per OS thread; callers must hold the thread that made the
// failing call.
func lastErrno() Errno {
	ret, _, _ := procErrno.Call()
	if ret == 0 {
		return EINVAL
	}
	return Errno(*(*int32)(unsafe.Pointer(ret)))
}

func (n *nativeConv) convPath(op convFlag, path string) (string, error) {
	if err := n.ensureInit(); err != nil {
		return "", err
	}
	from, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", fmt.Errorf("cygwin_conv_path: %w", EINVAL)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Size probe: with a nil buffer cygwin_conv_path reports the required
	// size in bytes, including the terminating NUL.
	size, _, _ := procCygwinConvPath.Call(
		uintptr(op), uintptr(unsafe.Pointer(from)), 0, 0)
	if int64(size) < 0 {
		return "", fmt.Errorf("cygwin_conv_path: %w", lastErrno())
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]uint16, size/2)
	ret, _, _ := procCygwinConvPath.Call(
		uintptr(op), uintptr(unsafe.Pointer(from)),
		uintptr(unsafe.Pointer(&buf[0])), size)
	if int64(ret) != 0 {
		return "", fmt.Errorf("cygwin_conv_path: %w", lastErrno())
	}
	return windows.UTF16ToString(buf), nil
}

func (n *nativeConv) convPathBytes(op convFlag, path []byte) ([]byte, error) {
	if err := n.ensureInit(); err != nil {
		return nil, err
	}
	if bytes.IndexByte(path, 0) >= 0 {
		return nil, fmt.Errorf("cygwin_conv_path: %w", EINVAL)
	}
	from := make([]byte, len(path)+1)
	copy(from, path)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	size, _, _ := procCygwinConvPath.Call(
		uintptr(op), uintptr(unsafe.Pointer(&from[0])), 0, 0)
	if int64(size) < 0 {
		return nil, fmt.Errorf("cygwin_conv_path: %w", lastErrno())
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	ret, _, _ := procCygwinConvPath.Call(
		uintptr(op), uintptr(unsafe.Pointer(&from[0])),
		uintptr(unsafe.Pointer(&buf[0])), size)
	if int64(ret) != 0 {
		return nil, fmt.Errorf("cygwin_conv_path: %w", lastErrno())
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return buf, nil
}

func (n *nativeConv) winpidToPid(winpid uint32) (int, error) {
	if err := n.ensureInit(); err != nil {
		return 0, err
	}
	ret, _, _ := procCygwinWinpidToPid.Call(uintptr(winpid))
	return int(int32(ret)), nil
}

func (n *nativeConv) pidToWinpid(pid int) (uint32, error) {
	if err := n.ensureInit(); err != nil {
		return 0, err
	}
	ret, _, _ := procCygwinInternal.Call(cwCygwinPidToWinpid, uintptr(pid))
	if ret == 0 {
		// The runtime reports an unknown or exited process with a zero
		// return, not through errno.
		return 0, fmt.Errorf("pid %d: %w", pid, ESRCH)
	}
	return uint32(ret), nil
}
