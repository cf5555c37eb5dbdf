package cygwin

// Mode selects the style of path a conversion produces, regardless of the
// style of the input path.
type Mode int

const (
	// ModeUnix produces a POSIX-style path ("/usr/bin").
	ModeUnix Mode = iota
	// ModeWindows produces a Windows-style path ("C:\cygwin64\usr\bin").
	ModeWindows
)

// Width selects the character width of a conversion. It is decided by
// which entry point was called, never inferred from the data: Cygpath
// operates on strings and is always wide, CygpathBytes operates on byte
// slices and is always narrow.
type Width int

const (
	// WidthNarrow converts byte (char) paths.
	WidthNarrow Width = iota
	// WidthWide converts UTF-16 (wchar_t) paths.
	WidthWide
)

// modeNames maps a mode's single-letter abbreviation to its canonical
// full name.
var modeNames = map[byte]string{
	'u': "unix",
	'w': "windows",
}

// ParseMode resolves a caller-supplied mode token. A token is either the
// exact single letter 'u' or 'w', or the exact full name "unix" or
// "windows"; matching is case-sensitive and anything else fails with
// ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return 0, ErrInvalidMode
	}
	full, ok := modeNames[s[0]]
	if !ok || (len(s) > 1 && s != full) {
		return 0, ErrInvalidMode
	}
	if s[0] == 'u' {
		return ModeUnix, nil
	}
	return ModeWindows, nil
}

// convOps is the fixed (Mode × Width) table of base operation codes.
var convOps = [2][2]convFlag{
	ModeUnix:    {WidthNarrow: ccpWinAToPosix, WidthWide: ccpWinWToPosix},
	ModeWindows: {WidthNarrow: ccpPosixToWinA, WidthWide: ccpPosixToWinW},
}

// resolveOp combines the base operation for (mode, width) with the
// directionality flag.
func resolveOp(m Mode, w Width, absolute bool) convFlag {
	op := convOps[m][w]
	if absolute {
		op |= ccpAbsolute
	} else {
		op |= ccpRelative
	}
	return op
}
