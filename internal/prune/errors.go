package prune

import "errors"

var ErrUnknownPolicy = errors.New("unknown missing-image policy")
