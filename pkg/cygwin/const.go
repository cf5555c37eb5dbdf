package cygwin

// convFlag is the operation code passed to cygwin_conv_path: a base
// direction/width selector OR'd with a directionality flag. Values mirror
// the cygwin_conv_path_t enum in <sys/cygwin.h>.
type convFlag uint32

const (
	ccpPosixToWinA convFlag = 0
	ccpPosixToWinW convFlag = 1
	ccpWinAToPosix convFlag = 2
	ccpWinWToPosix convFlag = 3

	ccpConvTypeMask convFlag = 3

	ccpAbsolute convFlag = 0
	ccpRelative convFlag = 0x100
)

// cwCygwinPidToWinpid is the cygwin_internal selector translating a Cygwin
// PID to its Windows PID: CW_CYGWIN_PID_TO_WINPID from the append-only
// cygwin_getinfo_types enum in <sys/cygwin.h>, right after CW_STRACE_ACTIVE
// (17). Stable since Cygwin 1.5.
const cwCygwinPidToWinpid = 18
