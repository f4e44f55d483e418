package anm2doc

import "fmt"

// applyOp dispatches a single Op to its per-variant apply function. Every
// variant returns:
//
//   - change: the identity triple to hand to ChangeCallback, describing
//     what the tree looks like now that op has been applied;
//   - reverse: an Op that, if applied next, undoes exactly this effect;
//   - noop: true when the op was a structural no-op (a move to its
//     current position) — the caller must not touch the undo/redo stacks
//     or fire any notification in that case;
//   - err: non-nil if op could not be applied; the tree is left
//     unmodified.
func (d *Document) applyOp(op Op) (change Change, reverse Op, noop bool, err error) {
	switch op.Type {
	case OpSetLabel:
		return applySetLabel(d, op)
	case OpSetPSDPath:
		return applySetPSDPath(d, op)
	case OpSetInformation:
		return applySetInformation(d, op)
	case OpSetDefaultCharacterID:
		return applySetDefaultCharacterID(d, op)
	case OpSetExclusiveSupportDefault:
		return applySetExclusiveSupportDefault(d, op)
	case OpSelectorInsert:
		return applySelectorInsert(d, op)
	case OpSelectorRemove:
		return applySelectorRemove(d, op)
	case OpSelectorMove:
		return applySelectorMove(d, op)
	case OpSelectorSetName:
		return applySelectorSetName(d, op)
	case OpItemInsert:
		return applyItemInsert(d, op)
	case OpItemRemove:
		return applyItemRemove(d, op)
	case OpItemMove:
		return applyItemMove(d, op)
	case OpItemSetName:
		return applyItemSetName(d, op)
	case OpItemSetValue:
		return applyItemSetValue(d, op)
	case OpItemSetScriptName:
		return applyItemSetScriptName(d, op)
	case OpParamInsert:
		return applyParamInsert(d, op)
	case OpParamRemove:
		return applyParamRemove(d, op)
	case OpParamSetKey:
		return applyParamSetKey(d, op)
	case OpParamSetValue:
		return applyParamSetValue(d, op)
	case OpTransactionBegin:
		return Change{Type: OpTransactionBegin}, Op{Type: OpTransactionEnd}, false, nil
	case OpTransactionEnd:
		return Change{Type: OpTransactionEnd}, Op{Type: OpTransactionBegin}, false, nil
	default:
		return Change{}, Op{}, false, fmt.Errorf("anm2doc: unknown op type %d", op.Type)
	}
}

// --- scalar field setters -------------------------------------------------

func applySetLabel(d *Document, op Op) (Change, Op, bool, error) {
	prev := d.Label
	d.Label = op.Str1
	return Change{Type: OpSetLabel}, Op{Type: OpSetLabel, Str1: prev}, false, nil
}

func applySetPSDPath(d *Document, op Op) (Change, Op, bool, error) {
	prev := d.PSDPath
	d.PSDPath = op.Str1
	return Change{Type: OpSetPSDPath}, Op{Type: OpSetPSDPath, Str1: prev}, false, nil
}

func applySetInformation(d *Document, op Op) (Change, Op, bool, error) {
	prev := d.Information
	d.Information = op.StrPtr
	return Change{Type: OpSetInformation}, Op{Type: OpSetInformation, StrPtr: prev}, false, nil
}

func applySetDefaultCharacterID(d *Document, op Op) (Change, Op, bool, error) {
	prev := d.DefaultCharacterID
	d.DefaultCharacterID = op.Str1
	return Change{Type: OpSetDefaultCharacterID}, Op{Type: OpSetDefaultCharacterID, Str1: prev}, false, nil
}

func applySetExclusiveSupportDefault(d *Document, op Op) (Change, Op, bool, error) {
	prev := d.ExclusiveSupportDefault
	d.ExclusiveSupportDefault = op.Bool1
	return Change{Type: OpSetExclusiveSupportDefault}, Op{Type: OpSetExclusiveSupportDefault, Bool1: prev}, false, nil
}

// --- selectors -------------------------------------------------------------

func resolveSelectorInsertIndex(selectors []*Selector, beforeID ID) int {
	if beforeID == NoID {
		return len(selectors)
	}
	if i, ok := indexOfSelector(selectors, beforeID); ok {
		return i
	}
	return len(selectors)
}

func applySelectorInsert(d *Document, op Op) (Change, Op, bool, error) {
	var sel *Selector
	if op.Selector != nil {
		sel = op.Selector
	} else {
		sel = &Selector{ID: d.allocID(), Name: op.Str1}
	}
	idx := resolveSelectorInsertIndex(d.Selectors, op.BeforeID)
	d.Selectors = sliceInsertSelector(d.Selectors, idx, sel)
	successor := successorSelectorID(d.Selectors, idx)
	change := Change{Type: OpSelectorInsert, ID: sel.ID, BeforeID: successor}
	reverse := Op{Type: OpSelectorRemove, ID: sel.ID}
	return change, reverse, false, nil
}

func applySelectorRemove(d *Document, op Op) (Change, Op, bool, error) {
	idx, ok := indexOfSelector(d.Selectors, op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("selector %d: %w", op.ID, ErrNotFound)
	}
	sel := d.Selectors[idx]
	successor := successorSelectorID(d.Selectors, idx)
	d.Selectors = sliceRemoveSelector(d.Selectors, idx)
	change := Change{Type: OpSelectorRemove, ID: sel.ID}
	reverse := Op{Type: OpSelectorInsert, ID: sel.ID, BeforeID: successor, Selector: sel}
	return change, reverse, false, nil
}

func applySelectorSetName(d *Document, op Op) (Change, Op, bool, error) {
	sel, ok := d.findSelectorByID(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("selector %d: %w", op.ID, ErrNotFound)
	}
	prev := sel.Name
	sel.Name = op.Str1
	change := Change{Type: OpSelectorSetName, ID: sel.ID}
	reverse := Op{Type: OpSelectorSetName, ID: sel.ID, Str1: prev}
	return change, reverse, false, nil
}

func applySelectorMove(d *Document, op Op) (Change, Op, bool, error) {
	idx, ok := indexOfSelector(d.Selectors, op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("selector %d: %w", op.ID, ErrNotFound)
	}
	oldSuccessor := successorSelectorID(d.Selectors, idx)
	ids := selectorIDs(d.Selectors)
	targetPos, changed := wouldReorder(ids, idx, op.BeforeID)
	if !changed {
		return Change{}, Op{}, true, nil
	}
	moved := d.Selectors[idx]
	d.Selectors = sliceRemoveSelector(d.Selectors, idx)
	d.Selectors = sliceInsertSelector(d.Selectors, targetPos, moved)
	newSuccessor := successorSelectorID(d.Selectors, targetPos)
	change := Change{Type: OpSelectorMove, ID: moved.ID, BeforeID: newSuccessor}
	reverse := Op{Type: OpSelectorMove, ID: moved.ID, BeforeID: oldSuccessor}
	return change, reverse, false, nil
}

// --- items -------------------------------------------------------------

func applyItemInsert(d *Document, op Op) (Change, Op, bool, error) {
	var destSel *Selector
	var beforeItemID ID
	if op.ParentID != NoID {
		sel, ok := d.findSelectorByID(op.ParentID)
		if !ok {
			return Change{}, Op{}, false, fmt.Errorf("selector %d: %w", op.ParentID, ErrNotFound)
		}
		destSel, beforeItemID = sel, op.BeforeID
	} else {
		sel, bID, err := d.resolveItemAnchor(op.BeforeID)
		if err != nil {
			return Change{}, Op{}, false, err
		}
		destSel, beforeItemID = sel, bID
	}

	insertIdx := len(destSel.Items)
	if beforeItemID != NoID {
		if i, ok := indexOfItemID(destSel.Items, beforeItemID); ok {
			insertIdx = i
		}
	}

	var it *Item
	if op.Item != nil {
		it = op.Item
	} else {
		it = &Item{ID: d.allocID(), Kind: op.Kind, Name: op.Str1}
		if op.Kind == ItemValue {
			it.Value = op.Str2
		} else {
			it.ScriptName = op.Str2
		}
	}

	destSel.Items = sliceInsertItem(destSel.Items, insertIdx, it)
	successor := successorItemID(destSel.Items, insertIdx)
	change := Change{Type: OpItemInsert, ID: it.ID, ParentID: destSel.ID, BeforeID: successor}
	reverse := Op{Type: OpItemRemove, ID: it.ID}
	return change, reverse, false, nil
}

func applyItemRemove(d *Document, op Op) (Change, Op, bool, error) {
	it, sel, idx, ok := d.findItem(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ID, ErrNotFound)
	}
	successor := successorItemID(sel.Items, idx)
	sel.Items = sliceRemoveItem(sel.Items, idx)
	change := Change{Type: OpItemRemove, ID: it.ID, ParentID: sel.ID}
	reverse := Op{Type: OpItemInsert, ID: it.ID, ParentID: sel.ID, BeforeID: successor, Item: it}
	return change, reverse, false, nil
}

func applyItemMove(d *Document, op Op) (Change, Op, bool, error) {
	it, srcSel, srcIdx, ok := d.findItem(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ID, ErrNotFound)
	}

	var destSel *Selector
	var beforeItemID ID
	if op.ParentID != NoID {
		sel, ok2 := d.findSelectorByID(op.ParentID)
		if !ok2 {
			return Change{}, Op{}, false, fmt.Errorf("selector %d: %w", op.ParentID, ErrNotFound)
		}
		destSel, beforeItemID = sel, op.BeforeID
	} else {
		sel, bID, err := d.resolveItemAnchor(op.BeforeID)
		if err != nil {
			return Change{}, Op{}, false, err
		}
		destSel, beforeItemID = sel, bID
	}

	oldSuccessor := successorItemID(srcSel.Items, srcIdx)

	if destSel.ID == srcSel.ID {
		ids := itemIDs(srcSel.Items)
		targetPos, changed := wouldReorder(ids, srcIdx, beforeItemID)
		if !changed {
			return Change{}, Op{}, true, nil
		}
		srcSel.Items = sliceRemoveItem(srcSel.Items, srcIdx)
		srcSel.Items = sliceInsertItem(srcSel.Items, targetPos, it)
		newSuccessor := successorItemID(srcSel.Items, targetPos)
		change := Change{Type: OpItemMove, ID: it.ID, ParentID: srcSel.ID, BeforeID: newSuccessor}
		reverse := Op{Type: OpItemMove, ID: it.ID, ParentID: srcSel.ID, BeforeID: oldSuccessor}
		return change, reverse, false, nil
	}

	destIdx := len(destSel.Items)
	if beforeItemID != NoID {
		if i, ok2 := indexOfItemID(destSel.Items, beforeItemID); ok2 {
			destIdx = i
		}
	}
	srcSel.Items = sliceRemoveItem(srcSel.Items, srcIdx)
	destSel.Items = sliceInsertItem(destSel.Items, destIdx, it)
	newSuccessor := successorItemID(destSel.Items, destIdx)
	change := Change{Type: OpItemMove, ID: it.ID, ParentID: destSel.ID, BeforeID: newSuccessor}
	reverse := Op{Type: OpItemMove, ID: it.ID, ParentID: srcSel.ID, BeforeID: oldSuccessor}
	return change, reverse, false, nil
}

func applyItemSetName(d *Document, op Op) (Change, Op, bool, error) {
	it, ok := d.findItemByID(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ID, ErrNotFound)
	}
	prev := it.Name
	it.Name = op.Str1
	change := Change{Type: OpItemSetName, ID: it.ID}
	reverse := Op{Type: OpItemSetName, ID: it.ID, Str1: prev}
	return change, reverse, false, nil
}

func applyItemSetValue(d *Document, op Op) (Change, Op, bool, error) {
	it, ok := d.findItemByID(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ID, ErrNotFound)
	}
	if it.Kind != ItemValue {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ID, ErrWrongItemShape)
	}
	prev := it.Value
	it.Value = op.Str1
	change := Change{Type: OpItemSetValue, ID: it.ID}
	reverse := Op{Type: OpItemSetValue, ID: it.ID, Str1: prev}
	return change, reverse, false, nil
}

func applyItemSetScriptName(d *Document, op Op) (Change, Op, bool, error) {
	it, ok := d.findItemByID(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ID, ErrNotFound)
	}
	if it.Kind != ItemAnimation {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ID, ErrWrongItemShape)
	}
	prev := it.ScriptName
	it.ScriptName = op.Str1
	change := Change{Type: OpItemSetScriptName, ID: it.ID}
	reverse := Op{Type: OpItemSetScriptName, ID: it.ID, Str1: prev}
	return change, reverse, false, nil
}

// --- params -------------------------------------------------------------

func applyParamInsert(d *Document, op Op) (Change, Op, bool, error) {
	it, ok := d.findItemByID(op.ParentID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", op.ParentID, ErrNotFound)
	}
	if op.Param == nil && it.Kind != ItemAnimation {
		return Change{}, Op{}, false, fmt.Errorf("item %d: %w", it.ID, ErrWrongItemShape)
	}

	insertIdx := len(it.Params)
	if op.BeforeID != NoID {
		i, found := indexOfParamID(it.Params, op.BeforeID)
		switch {
		case found:
			insertIdx = i
		case op.Param == nil:
			return Change{}, Op{}, false, fmt.Errorf("param %d: %w", op.BeforeID, ErrNotFound)
		}
	}

	var p *Param
	if op.Param != nil {
		p = op.Param
	} else {
		p = &Param{ID: d.allocID(), Key: op.Str1, Value: op.Str2}
	}

	it.Params = sliceInsertParam(it.Params, insertIdx, p)
	successor := successorParamID(it.Params, insertIdx)
	change := Change{Type: OpParamInsert, ID: p.ID, ParentID: it.ID, BeforeID: successor}
	reverse := Op{Type: OpParamRemove, ID: p.ID}
	return change, reverse, false, nil
}

func applyParamRemove(d *Document, op Op) (Change, Op, bool, error) {
	p, it, idx, ok := d.findParam(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("param %d: %w", op.ID, ErrNotFound)
	}
	successor := successorParamID(it.Params, idx)
	it.Params = sliceRemoveParam(it.Params, idx)
	change := Change{Type: OpParamRemove, ID: p.ID, ParentID: it.ID}
	reverse := Op{Type: OpParamInsert, ID: p.ID, ParentID: it.ID, BeforeID: successor, Param: p}
	return change, reverse, false, nil
}

func applyParamSetKey(d *Document, op Op) (Change, Op, bool, error) {
	p, it, _, ok := d.findParam(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("param %d: %w", op.ID, ErrNotFound)
	}
	prev := p.Key
	p.Key = op.Str1
	change := Change{Type: OpParamSetKey, ID: p.ID, ParentID: it.ID}
	reverse := Op{Type: OpParamSetKey, ID: p.ID, Str1: prev}
	return change, reverse, false, nil
}

func applyParamSetValue(d *Document, op Op) (Change, Op, bool, error) {
	p, it, _, ok := d.findParam(op.ID)
	if !ok {
		return Change{}, Op{}, false, fmt.Errorf("param %d: %w", op.ID, ErrNotFound)
	}
	prev := p.Value
	p.Value = op.Str1
	change := Change{Type: OpParamSetValue, ID: p.ID, ParentID: it.ID}
	reverse := Op{Type: OpParamSetValue, ID: p.ID, Str1: prev}
	return change, reverse, false, nil
}
