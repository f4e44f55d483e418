package anm2doc

// indexOfSelector returns the position of the selector with id, if any.
func indexOfSelector(selectors []*Selector, id ID) (int, bool) {
	for i, s := range selectors {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

func indexOfItemID(items []*Item, id ID) (int, bool) {
	for i, it := range items {
		if it.ID == id {
			return i, true
		}
	}
	return 0, false
}

func indexOfParamID(params []*Param, id ID) (int, bool) {
	for i, p := range params {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

// successorSelectorID returns the ID of the selector immediately after
// position idx in selectors, or NoID if idx is the last element.
func successorSelectorID(selectors []*Selector, idx int) ID {
	if idx+1 < len(selectors) {
		return selectors[idx+1].ID
	}
	return NoID
}

func successorItemID(items []*Item, idx int) ID {
	if idx+1 < len(items) {
		return items[idx+1].ID
	}
	return NoID
}

func successorParamID(params []*Param, idx int) ID {
	if idx+1 < len(params) {
		return params[idx+1].ID
	}
	return NoID
}

func sliceInsertSelector(selectors []*Selector, idx int, s *Selector) []*Selector {
	selectors = append(selectors, nil)
	copy(selectors[idx+1:], selectors[idx:])
	selectors[idx] = s
	return selectors
}

func sliceRemoveSelector(selectors []*Selector, idx int) []*Selector {
	copy(selectors[idx:], selectors[idx+1:])
	selectors[len(selectors)-1] = nil
	return selectors[:len(selectors)-1]
}

func sliceInsertItem(items []*Item, idx int, it *Item) []*Item {
	items = append(items, nil)
	copy(items[idx+1:], items[idx:])
	items[idx] = it
	return items
}

func sliceRemoveItem(items []*Item, idx int) []*Item {
	copy(items[idx:], items[idx+1:])
	items[len(items)-1] = nil
	return items[:len(items)-1]
}

func sliceInsertParam(params []*Param, idx int, p *Param) []*Param {
	params = append(params, nil)
	copy(params[idx+1:], params[idx:])
	params[idx] = p
	return params
}

func sliceRemoveParam(params []*Param, idx int) []*Param {
	copy(params[idx:], params[idx+1:])
	params[len(params)-1] = nil
	return params[:len(params)-1]
}

func selectorIDs(selectors []*Selector) []ID {
	ids := make([]ID, len(selectors))
	for i, s := range selectors {
		ids[i] = s.ID
	}
	return ids
}

func itemIDs(items []*Item) []ID {
	ids := make([]ID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// wouldReorder reports whether removing the element at idx and reinserting
// it according to the before_id semantics described in spec §4.1 (NoID =
// append, otherwise insert before the element with that id, falling back
// to append if absent) would produce a different order than ids. When it
// would, targetPos is the reinsertion index within the (idx-removed) list.
func wouldReorder(ids []ID, idx int, beforeID ID) (targetPos int, changed bool) {
	n := len(ids)
	remaining := make([]ID, 0, n-1)
	for i, v := range ids {
		if i != idx {
			remaining = append(remaining, v)
		}
	}
	targetPos = len(remaining)
	if beforeID != NoID {
		for i, v := range remaining {
			if v == beforeID {
				targetPos = i
				break
			}
		}
	}
	newOrder := make([]ID, 0, n)
	newOrder = append(newOrder, remaining[:targetPos]...)
	newOrder = append(newOrder, ids[idx])
	newOrder = append(newOrder, remaining[targetPos:]...)
	for i, v := range newOrder {
		if v != ids[i] {
			return targetPos, true
		}
	}
	return targetPos, false
}

func (d *Document) findSelectorByID(id ID) (*Selector, bool) {
	idx, ok := indexOfSelector(d.Selectors, id)
	if !ok {
		return nil, false
	}
	return d.Selectors[idx], true
}

// findItem locates an item by id anywhere in the document, returning it
// along with its owning selector and index within that selector's Items.
func (d *Document) findItem(id ID) (it *Item, sel *Selector, idx int, ok bool) {
	for _, s := range d.Selectors {
		if i, found := indexOfItemID(s.Items, id); found {
			return s.Items[i], s, i, true
		}
	}
	return nil, nil, 0, false
}

func (d *Document) findItemByID(id ID) (*Item, bool) {
	it, _, _, ok := d.findItem(id)
	return it, ok
}

// findParam locates a param by id anywhere in the document, returning it
// along with its owning item and index within that item's Params.
func (d *Document) findParam(id ID) (p *Param, owner *Item, idx int, ok bool) {
	for _, s := range d.Selectors {
		for _, it := range s.Items {
			if i, found := indexOfParamID(it.Params, id); found {
				return it.Params[i], it, i, true
			}
		}
	}
	return nil, nil, 0, false
}

// resolveItemAnchor implements the before_id dual interpretation from
// spec §4.1: beforeID may name a selector (append to its end) or a
// sibling item (insert immediately before it). Returns the destination
// selector and the item ID to insert before (NoID meaning append).
func (d *Document) resolveItemAnchor(beforeID ID) (*Selector, ID, error) {
	if beforeID == NoID {
		return nil, NoID, ErrInvalidArgument
	}
	if sel, ok := d.findSelectorByID(beforeID); ok {
		return sel, NoID, nil
	}
	if _, sel, _, ok := d.findItem(beforeID); ok {
		return sel, beforeID, nil
	}
	return nil, NoID, ErrNotFound
}
