package docker

import "errors"

var (
	ErrTool               = errors.New("docker invocation failed")
	ErrBuildFailed        = errors.New("docker build failed")
	ErrEncoding           = errors.New("docker produced invalid text")
	ErrNoImage            = errors.New("no image produced")
	ErrMalformedReference = errors.New("malformed image reference")
)
