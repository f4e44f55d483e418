package anm2doc

// do runs op through applyOp and, on success, pushes its inverse onto the
// undo stack, clears the redo stack, marks the document modified, and
// fires the change and state notifications. It is the single entry point
// every public mutator funnels through.
func (d *Document) do(op Op) (Change, error) {
	if d.inCallback {
		return Change{}, ErrReentrant
	}
	change, reverse, noop, err := d.applyOp(op)
	if err != nil {
		return Change{}, err
	}
	if noop {
		return Change{}, nil
	}
	d.undoStack = append(d.undoStack, reverse)
	d.redoStack = nil
	d.Modified = true
	d.emitChange(change)
	d.emitState()
	return change, nil
}

func (d *Document) emitChange(c Change) {
	if d.ChangeCallback == nil {
		return
	}
	d.inCallback = true
	defer func() { d.inCallback = false }()
	d.ChangeCallback(c)
}

func (d *Document) emitState() {
	if d.StateCallback == nil {
		return
	}
	d.inCallback = true
	defer func() { d.inCallback = false }()
	d.StateCallback()
}

// BeginTransaction opens (or, if already inside one, extends) a
// transaction. The first Begin of a nested group pushes a TX_BEGIN marker
// and clears the redo stack, matching plain mutation semantics; nested
// Begin/End pairs only adjust the depth counter (spec §4.2.2).
func (d *Document) BeginTransaction() error {
	if d.inCallback {
		return ErrReentrant
	}
	if d.transactionDepth == 0 {
		d.redoStack = nil
		d.undoStack = append(d.undoStack, Op{Type: OpTransactionBegin})
		d.emitChange(Change{Type: OpTransactionBegin})
	}
	d.transactionDepth++
	return nil
}

// EndTransaction closes one level of transaction nesting. At depth 0, if
// no mutation occurred inside the transaction (top of the undo stack is
// still the TX_BEGIN just pushed by BeginTransaction), the marker is
// popped and discarded with no TX_END notification; otherwise a TX_END
// marker is pushed and its notification fires. Either way state-changed
// fires once (spec §4.2.2).
func (d *Document) EndTransaction() error {
	if d.inCallback {
		return ErrReentrant
	}
	if d.transactionDepth == 0 {
		return nil
	}
	d.transactionDepth--
	if d.transactionDepth != 0 {
		return nil
	}
	n := len(d.undoStack)
	if n > 0 && d.undoStack[n-1].Type == OpTransactionBegin {
		d.undoStack = d.undoStack[:n-1]
	} else {
		d.undoStack = append(d.undoStack, Op{Type: OpTransactionEnd})
		d.emitChange(Change{Type: OpTransactionEnd})
	}
	d.emitState()
	return nil
}

// undoRedo pops the top entry of popFrom and applies it, pushing its
// inverse onto pushTo. If the popped entry is a TX_END marker, it keeps
// popping and applying from popFrom until it pops and applies the
// matching TX_BEGIN, so an entire transaction undoes (or redoes) as one
// call (spec §4.2.3). Used by both Undo and Redo, which differ only in
// which stack plays source and which plays destination — transaction
// brackets mirror symmetrically because TX_BEGIN/TX_END are each other's
// apply-time inverse.
func (d *Document) undoRedo(popFrom, pushTo *[]Op) (bool, error) {
	src := *popFrom
	if len(src) == 0 {
		return false, nil
	}
	n := len(src)
	first := src[n-1]
	*popFrom = src[:n-1]

	change, reverse, _, err := d.applyOp(first)
	if err != nil {
		*popFrom = append(*popFrom, first)
		return false, err
	}
	d.emitChange(change)
	*pushTo = append(*pushTo, reverse)

	if first.Type == OpTransactionEnd {
		for {
			s := *popFrom
			m := len(s)
			if m == 0 {
				return false, errCorruptUndoStack
			}
			op := s[m-1]
			*popFrom = s[:m-1]
			c2, r2, _, err2 := d.applyOp(op)
			if err2 != nil {
				return false, err2
			}
			d.emitChange(c2)
			*pushTo = append(*pushTo, r2)
			if op.Type == OpTransactionBegin {
				break
			}
		}
	}

	d.Modified = true
	d.emitState()
	return true, nil
}

// Undo reverts the most recent mutation (or, if it was a transaction,
// the whole transaction) and returns false without error if there was
// nothing to undo.
func (d *Document) Undo() (bool, error) {
	if d.inCallback {
		return false, ErrReentrant
	}
	return d.undoRedo(&d.undoStack, &d.redoStack)
}

// Redo reapplies the most recently undone mutation or transaction.
func (d *Document) Redo() (bool, error) {
	if d.inCallback {
		return false, ErrReentrant
	}
	return d.undoRedo(&d.redoStack, &d.undoStack)
}

// CanUndo reports whether Undo would have any effect.
func (d *Document) CanUndo() bool { return len(d.undoStack) > 0 }

// CanRedo reports whether Redo would have any effect.
func (d *Document) CanRedo() bool { return len(d.redoStack) > 0 }

// ClearUndoHistory discards both stacks without touching the tree or
// scalar fields. Decode calls this after building a loaded document, so a
// freshly loaded document has nothing to undo or redo.
func (d *Document) ClearUndoHistory() {
	d.undoStack = nil
	d.redoStack = nil
}

// Reset discards the tree, scalar fields, undo/redo history and
// checksums, returning the document to the state New would produce, while
// preserving the callback slots, the Localizer and the next-id counter (so
// IDs issued before the reset are never reused). It fires a single reset
// change followed by state-changed (spec §4.3).
func (d *Document) Reset() {
	cc, sc, loc, next := d.ChangeCallback, d.StateCallback, d.Localizer, d.nextID
	*d = *New()
	d.ChangeCallback, d.StateCallback, d.Localizer, d.nextID = cc, sc, loc, next
	d.emitChange(Change{Type: OpReset})
	d.emitState()
}
