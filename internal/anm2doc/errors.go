package anm2doc

import "errors"

// Error classes surfaced to callers, per spec §6.3/§7. OutOfMemory has no
// meaningful Go equivalent (the language does not expose allocation
// failure as a recoverable condition) and is intentionally not modelled.
var (
	// ErrInvalidArgument covers a null/zero handle, an unknown ID, or an
	// operation attempted on the wrong item shape.
	ErrInvalidArgument = errors.New("anm2doc: invalid argument")

	// ErrNotFound means an ID did not resolve to a live node.
	ErrNotFound = invalidArgument("anm2doc: not found")

	// ErrWrongItemShape means a mutator was called on an item of the
	// wrong kind (e.g. set_value on an animation item).
	ErrWrongItemShape = invalidArgument("anm2doc: wrong item shape")

	// ErrReentrant means a mutator was invoked from within a change or
	// state callback that is already in flight.
	ErrReentrant = invalidArgument("anm2doc: reentrant mutation")

	// errCorruptUndoStack means a TX_END was popped without a matching
	// TX_BEGIN beneath it, which would mean the stack was built by
	// something other than this package's own engine.
	errCorruptUndoStack = errors.New("anm2doc: undo stack missing transaction begin")
)

// invalidArgument returns a sentinel with its own message that errors.Is
// also matches against ErrInvalidArgument.
func invalidArgument(msg string) error { return &classError{msg: msg} }

type classError struct{ msg string }

func (e *classError) Error() string { return e.msg }
func (e *classError) Unwrap() error { return ErrInvalidArgument }
