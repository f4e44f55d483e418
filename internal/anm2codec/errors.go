package anm2codec

import "errors"

var (
	// ErrInvalidFormat means the input bytes do not contain a recognisable
	// --[==[PTK:...]==] metadata line.
	ErrInvalidFormat = errors.New("anm2codec: not a valid PSDToolKit anm2 script")

	// ErrForbiddenSequence means a layer name or value would, once
	// embedded in the JSON metadata line, contain the literal sequence
	// "]==]" and thereby break out of the surrounding Lua long comment.
	ErrForbiddenSequence = errors.New(`anm2codec: value contains forbidden character sequence "]==]"`)
)
