package build

import "errors"

var (
	ErrUnknownArchitecture = errors.New("unknown architecture")
	ErrUnknownZigVersion   = errors.New("unknown Zig version")
)
