package record

import "errors"

var (
	ErrStore    = errors.New("record store failure")
	ErrEncoding = errors.New("record log is not valid text")
)
