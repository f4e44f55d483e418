package anm2doc

// SelectorCount returns the number of top-level selectors.
func (d *Document) SelectorCount() int { return len(d.Selectors) }

// SelectorIDAt returns the ID of the i'th selector, or NoID if i is out
// of range.
func (d *Document) SelectorIDAt(i int) ID {
	if i < 0 || i >= len(d.Selectors) {
		return NoID
	}
	return d.Selectors[i].ID
}

// SelectorIndex returns the position of the selector with id, if any.
func (d *Document) SelectorIndex(id ID) (int, bool) {
	return indexOfSelector(d.Selectors, id)
}

// Selector returns the selector with id, if any. Callers must treat the
// returned value as read-only; use the mutator methods to change it.
func (d *Document) Selector(id ID) (*Selector, bool) {
	return d.findSelectorByID(id)
}

// Item returns the item with id, if any, anywhere in the document.
// Callers must treat the returned value as read-only.
func (d *Document) Item(id ID) (*Item, bool) {
	return d.findItemByID(id)
}

// ItemSelector returns the ID of the selector containing item id, if any.
func (d *Document) ItemSelector(id ID) (ID, bool) {
	_, sel, _, ok := d.findItem(id)
	if !ok {
		return NoID, false
	}
	return sel.ID, true
}

// Param returns the param with id, if any, anywhere in the document.
// Callers must treat the returned value as read-only.
func (d *Document) Param(id ID) (*Param, bool) {
	p, _, _, ok := d.findParam(id)
	return p, ok
}

// ParamItem returns the ID of the item owning param id, if any.
func (d *Document) ParamItem(id ID) (ID, bool) {
	_, it, _, ok := d.findParam(id)
	if !ok {
		return NoID, false
	}
	return it.ID, true
}

// VerifyChecksum reports whether a loaded document's stored checksum (from
// the file's header) matches the checksum calculated over that file's
// body, i.e. whether the script is unchanged since it was last saved by
// this tool. A document that was never loaded from a file (both
// fields empty) reports false.
func (d *Document) VerifyChecksum() bool {
	return d.StoredChecksum != "" && d.StoredChecksum == d.CalculatedChecksum
}
