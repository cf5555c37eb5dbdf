//go:build !windows

package cygwin

// stubConv stands in for the compatibility layer on platforms that do not
// have one. Every operation fails with ErrUnsupported.
type stubConv struct{}

func newNativeConv() conv { return stubConv{} }

func (stubConv) convPath(convFlag, string) (string, error) {
	return "", ErrUnsupported
}

func (stubConv) convPathBytes(convFlag, []byte) ([]byte, error) {
	return nil, ErrUnsupported
}

func (stubConv) winpidToPid(uint32) (int, error) {
	return 0, ErrUnsupported
}

func (stubConv) pidToWinpid(int) (uint32, error) {
	return 0, ErrUnsupported
}
