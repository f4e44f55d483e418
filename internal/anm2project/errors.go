package anm2project

import "errors"

// ErrInvalidArgument is returned for a nil document or empty path.
var ErrInvalidArgument = errors.New("anm2project: invalid argument")
