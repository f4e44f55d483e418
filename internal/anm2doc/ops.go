package anm2doc

// OpType tags the kind of operation recorded on the undo/redo stacks and
// reported to the change callback. The enum is part of the observable
// notification contract (spec §9 REDESIGN FLAGS), so it is kept even
// though apply logic is split into one function per variant rather than a
// single switch.
type OpType int

const (
	// Scalar document-field setters.
	OpSetLabel OpType = iota
	OpSetPSDPath
	OpSetInformation
	OpSetDefaultCharacterID
	OpSetExclusiveSupportDefault

	// Structural tree operations.
	OpSelectorInsert
	OpSelectorRemove
	OpSelectorMove
	OpItemInsert
	OpItemRemove
	OpItemMove
	OpParamInsert
	OpParamRemove

	// Field setters on tree nodes.
	OpSelectorSetName
	OpItemSetName
	OpItemSetValue
	OpItemSetScriptName
	OpParamSetKey
	OpParamSetValue

	// Markers. TX_BEGIN/TX_END bracket a transaction; OpReset is
	// notification-only and is never pushed onto a stack.
	OpTransactionBegin
	OpTransactionEnd
	OpReset
)

// Op is the tagged-union record applied by the engine and transported on
// the undo/redo stacks. Only the fields relevant to Type are populated;
// see the apply* functions in apply.go for the exact per-variant contract.
//
// ParentID carries different meanings depending on Type and on whether it
// is zero (NoID): for item insert/move, a non-zero ParentID names the
// already-resolved destination selector (used internally when replaying a
// stored inverse op); a zero ParentID means BeforeID must still be
// resolved against the document using the public dual-interpretation rule
// (spec §4.1: before_id may name either a selector or a sibling item).
type Op struct {
	Type     OpType
	ID       ID
	ParentID ID
	BeforeID ID

	Str1 string
	Str2 string

	// StrPtr carries the new/previous value for OpSetInformation, where
	// nil is distinct from the empty string (nil means auto-generate).
	StrPtr *string

	// Bool1 carries the new/previous value for OpSetExclusiveSupportDefault.
	Bool1 bool

	// Kind selects the item shape for OpItemInsert when Item == nil
	// (i.e. inserting a brand-new item rather than replaying a detached
	// subtree).
	Kind ItemKind

	// Detached subtree transport: set on an insert Op that is replaying a
	// previously removed node (the reverse of a remove, or the inverse
	// of replaying such an insert again). Exactly one of these is
	// non-nil, matching Op.Type.
	Selector *Selector
	Item     *Item
	Param    *Param
}

// Change is the identity triple delivered to Document.ChangeCallback after
// an op has been applied, sufficient for a listener to locate the
// affected node without re-traversing the tree (spec §4.2.4).
type Change struct {
	Type     OpType
	ID       ID
	ParentID ID
	BeforeID ID
}
