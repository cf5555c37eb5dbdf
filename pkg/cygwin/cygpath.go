package cygwin

// Cygpath converts a path between the compatibility layer's POSIX
// namespace and the native Windows namespace, like the cygpath system
// utility. The input may be in either style; mode selects the style of the
// result and accepts 'u'/"unix" or 'w'/"windows" (ErrInvalidMode
// otherwise). With absolute set the result is an absolute path, else it is
// kept relative. String paths always use the layer's wide (UTF-16)
// conversion.
func (l *Layer) Cygpath(path, mode string, absolute bool) (string, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return "", err
	}
	return l.c.convPath(resolveOp(m, WidthWide, absolute), path)
}

// CygpathBytes is Cygpath for byte-sequence paths, using the layer's
// narrow (char) conversion.
func (l *Layer) CygpathBytes(path []byte, mode string, absolute bool) ([]byte, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return l.c.convPathBytes(resolveOp(m, WidthNarrow, absolute), path)
}

// ToUnix converts path to an absolute POSIX-style path.
func (l *Layer) ToUnix(path string) (string, error) {
	return l.Cygpath(path, "unix", true)
}

// ToWindows converts path to an absolute Windows-style path.
func (l *Layer) ToWindows(path string) (string, error) {
	return l.Cygpath(path, "windows", true)
}

// Cygpath converts a path using the process-wide default Layer.
func Cygpath(path, mode string, absolute bool) (string, error) {
	return std.Cygpath(path, mode, absolute)
}

// CygpathBytes converts a byte-sequence path using the process-wide
// default Layer.
func CygpathBytes(path []byte, mode string, absolute bool) ([]byte, error) {
	return std.CygpathBytes(path, mode, absolute)
}

// ToUnix converts path to an absolute POSIX-style path using the
// process-wide default Layer.
func ToUnix(path string) (string, error) { return std.ToUnix(path) }

// ToWindows converts path to an absolute Windows-style path using the
// process-wide default Layer.
func ToWindows(path string) (string, error) { return std.ToWindows(path) }
