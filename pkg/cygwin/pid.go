package cygwin

// WinpidToPid maps a native Windows process identifier to the PID of the
// corresponding compatibility-layer process. It is a direct pass-through
// to the runtime: no validation is performed and, per the runtime's
// contract, -1 is returned for a Windows PID with no layer process.
func (l *Layer) WinpidToPid(winpid uint32) (int, error) {
	return l.c.winpidToPid(winpid)
}

// PidToWinpid maps the PID of a compatibility-layer process to its native
// Windows PID. If no live layer process has the given PID the call fails
// with an error wrapping ESRCH; a missing process is never reported
// through a sentinel return value.
func (l *Layer) PidToWinpid(pid int) (uint32, error) {
	return l.c.pidToWinpid(pid)
}

// WinpidToPid maps a Windows PID to a layer PID using the process-wide
// default Layer.
func WinpidToPid(winpid uint32) (int, error) { return std.WinpidToPid(winpid) }

// PidToWinpid maps a layer PID to a Windows PID using the process-wide
// default Layer.
func PidToWinpid(pid int) (uint32, error) { return std.PidToWinpid(pid) }
