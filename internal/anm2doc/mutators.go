package anm2doc

import "fmt"

// SetLabel sets the document's display label.
func (d *Document) SetLabel(label string) error {
	_, err := d.do(Op{Type: OpSetLabel, Str1: label})
	return err
}

// SetPSDPath sets the path to the source PSD file.
func (d *Document) SetPSDPath(path string) error {
	_, err := d.do(Op{Type: OpSetPSDPath, Str1: path})
	return err
}

// SetInformation sets the descriptive comment embedded in the generated
// script. A nil info reverts to auto-generating one from the PSD path at
// save time.
func (d *Document) SetInformation(info *string) error {
	_, err := d.do(Op{Type: OpSetInformation, StrPtr: info})
	return err
}

// SetDefaultCharacterID sets the default value of the Character ID field
// in the obj2 overwrite script.
func (d *Document) SetDefaultCharacterID(id string) error {
	_, err := d.do(Op{Type: OpSetDefaultCharacterID, Str1: id})
	return err
}

// SetExclusiveSupportDefault sets the default exclusive-support flag for
// newly generated selectors.
func (d *Document) SetExclusiveSupportDefault(v bool) error {
	_, err := d.do(Op{Type: OpSetExclusiveSupportDefault, Bool1: v})
	return err
}

// SelectorInsert inserts a new, empty selector before the selector named
// by beforeID (NoID appends at the end, and an unresolved beforeID also
// falls back to the end). An empty name is replaced with a localized
// "Unnamed Selector" placeholder. Returns the new selector's ID.
func (d *Document) SelectorInsert(beforeID ID, name string) (ID, error) {
	if name == "" {
		name = d.localize(locUnnamedSelectorCtx, "Unnamed Selector")
	}
	change, err := d.do(Op{Type: OpSelectorInsert, BeforeID: beforeID, Str1: name})
	if err != nil {
		return NoID, err
	}
	return change.ID, nil
}

// SelectorRemove deletes the selector and every item/param it contains.
func (d *Document) SelectorRemove(id ID) error {
	_, err := d.do(Op{Type: OpSelectorRemove, ID: id})
	return err
}

// SelectorSetName renames a selector.
func (d *Document) SelectorSetName(id ID, name string) error {
	_, err := d.do(Op{Type: OpSelectorSetName, ID: id, Str1: name})
	return err
}

// SelectorMove repositions a selector before the selector named by
// beforeID, with the same before_id semantics as SelectorInsert. Moving a
// selector to its current position is a no-op: it succeeds and produces
// no notification and no undo entry.
func (d *Document) SelectorMove(id, beforeID ID) error {
	_, err := d.do(Op{Type: OpSelectorMove, ID: id, BeforeID: beforeID})
	return err
}

// SelectorWouldMove reports whether calling SelectorMove(id, beforeID)
// right now would actually reorder anything.
func (d *Document) SelectorWouldMove(id, beforeID ID) bool {
	idx, ok := indexOfSelector(d.Selectors, id)
	if !ok {
		return false
	}
	_, changed := wouldReorder(selectorIDs(d.Selectors), idx, beforeID)
	return changed
}

// ItemInsertValue inserts a new layer-path value item. beforeID names
// either the containing selector (append) or a sibling item (insert
// before it); NoID or an unresolved ID is an error.
func (d *Document) ItemInsertValue(beforeID ID, name, value string) (ID, error) {
	change, err := d.do(Op{Type: OpItemInsert, BeforeID: beforeID, Kind: ItemValue, Str1: name, Str2: value})
	if err != nil {
		return NoID, err
	}
	return change.ID, nil
}

// ItemInsertAnimation inserts a new animation item bound to scriptName.
// beforeID has the same dual interpretation as ItemInsertValue.
func (d *Document) ItemInsertAnimation(beforeID ID, scriptName, name string) (ID, error) {
	if scriptName == "" {
		return NoID, fmt.Errorf("script name: %w", ErrInvalidArgument)
	}
	change, err := d.do(Op{Type: OpItemInsert, BeforeID: beforeID, Kind: ItemAnimation, Str1: name, Str2: scriptName})
	if err != nil {
		return NoID, err
	}
	return change.ID, nil
}

// ItemRemove deletes the item and every param it contains.
func (d *Document) ItemRemove(id ID) error {
	_, err := d.do(Op{Type: OpItemRemove, ID: id})
	return err
}

// ItemMove repositions an item, possibly into a different selector.
// beforeID has the same dual interpretation as ItemInsertValue. A move to
// the item's current position is a no-op.
func (d *Document) ItemMove(id, beforeID ID) error {
	_, err := d.do(Op{Type: OpItemMove, ID: id, BeforeID: beforeID})
	return err
}

// ItemWouldMove reports whether calling ItemMove(id, beforeID) right now
// would actually move anything.
func (d *Document) ItemWouldMove(id, beforeID ID) bool {
	_, srcSel, srcIdx, ok := d.findItem(id)
	if !ok {
		return false
	}
	destSel, beforeItemID, err := d.resolveItemAnchor(beforeID)
	if err != nil {
		return false
	}
	if destSel.ID != srcSel.ID {
		return true
	}
	_, changed := wouldReorder(itemIDs(srcSel.Items), srcIdx, beforeItemID)
	return changed
}

// ItemSetName renames an item (valid for either shape).
func (d *Document) ItemSetName(id ID, name string) error {
	_, err := d.do(Op{Type: OpItemSetName, ID: id, Str1: name})
	return err
}

// ItemSetValue sets the layer path of a value item. Returns
// ErrWrongItemShape if id names an animation item.
func (d *Document) ItemSetValue(id ID, value string) error {
	_, err := d.do(Op{Type: OpItemSetValue, ID: id, Str1: value})
	return err
}

// ItemSetScriptName rebinds the Lua constructor of an animation item.
// Returns ErrWrongItemShape if id names a value item.
func (d *Document) ItemSetScriptName(id ID, scriptName string) error {
	if scriptName == "" {
		return fmt.Errorf("script name: %w", ErrInvalidArgument)
	}
	_, err := d.do(Op{Type: OpItemSetScriptName, ID: id, Str1: scriptName})
	return err
}

// ParamInsert adds a key/value param to an animation item. itemID must
// name an animation item; beforeParamID inserts before an existing
// sibling param, or NoID appends at the end. Returns the new param's ID.
func (d *Document) ParamInsert(itemID, beforeParamID ID, key, value string) (ID, error) {
	change, err := d.do(Op{Type: OpParamInsert, ParentID: itemID, BeforeID: beforeParamID, Str1: key, Str2: value})
	if err != nil {
		return NoID, err
	}
	return change.ID, nil
}

// ParamRemove deletes a param.
func (d *Document) ParamRemove(id ID) error {
	_, err := d.do(Op{Type: OpParamRemove, ID: id})
	return err
}

// ParamSetKey renames a param's key.
func (d *Document) ParamSetKey(id ID, key string) error {
	_, err := d.do(Op{Type: OpParamSetKey, ID: id, Str1: key})
	return err
}

// ParamSetValue sets a param's value.
func (d *Document) ParamSetValue(id ID, value string) error {
	_, err := d.do(Op{Type: OpParamSetValue, ID: id, Str1: value})
	return err
}
