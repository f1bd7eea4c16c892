package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates the file uses a bit depth other
	// than 16, which this decoder does not handle.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates the file header does not describe
	// a usable sample layout.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
