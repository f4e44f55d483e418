// Package anm2doc holds the in-memory document model for a PSD layer
// selector document: an ordered tree of named selectors, each holding an
// ordered list of items (a layer-path value, or a parameterised animation
// with ordered key/value params).
package anm2doc

// ID identifies a selector, item, or param uniquely within a Document.
// Zero (NoID) means "none" or "at end", depending on context.
type ID uint32

// NoID is the reserved ID meaning "none" or "end of list".
const NoID ID = 0

// UserData is an opaque handle owned by the UI layer. The document stores
// and returns it verbatim; it is never interpreted, never part of
// undo/redo state, and never serialized.
type UserData uintptr

// ItemKind distinguishes the two shapes an Item can take.
type ItemKind int

const (
	// ItemValue is a layer-path value item.
	ItemValue ItemKind = iota
	// ItemAnimation is a parameterised Lua-script animation item.
	ItemAnimation
)

// Param is a key/value pair attached to an animation Item. Key and value
// are arbitrary UTF-8 strings; empty strings are permitted and round-trip.
type Param struct {
	ID       ID
	Key      string
	Value    string
	UserData UserData
}

// Item is a single entry in a Selector. Kind determines which of the
// shape-specific fields are meaningful: a Value item has ScriptName == ""
// and Params == nil; an Animation item has ScriptName != "" and Name/Value
// following the animation shape (Value is unused for animation items).
type Item struct {
	ID ID

	Kind ItemKind

	// Name is the display name, present on both shapes.
	Name string

	// Value holds the layer path string for ItemValue items only.
	Value string

	// ScriptName identifies the Lua constructor (e.g. "PSDToolKit.Blinker")
	// for ItemAnimation items only.
	ScriptName string

	// Params holds the ordered key/value parameters for ItemAnimation
	// items only; always nil for ItemValue items.
	Params []*Param

	UserData UserData
}

// Selector is a named, ordered group of selectable items.
type Selector struct {
	ID       ID
	Name     string
	Items    []*Item
	UserData UserData
}

// Document is the top-level container: an ordered sequence of selectors
// plus the scalar fields described in spec §3.1, and the undo/redo engine
// state (transaction depth, modified flag, checksums).
type Document struct {
	Version                  int
	Label                    string
	PSDPath                  string
	Information              *string // nil = auto-generate at save time
	DefaultCharacterID        string
	ExclusiveSupportDefault bool

	StoredChecksum     string // 16 lowercase hex digits, from a loaded file's header
	CalculatedChecksum string // computed over the body of the just-loaded file

	Modified bool

	Selectors []*Selector

	nextID ID

	transactionDepth int

	undoStack []Op
	redoStack []Op

	// inCallback guards against re-entrant mutation while a callback is
	// running (spec §4.3: "must not mutate the document while a callback
	// is in flight").
	inCallback bool

	ChangeCallback func(Change)
	StateCallback  func()

	// Localizer supplies UI-locale text for a handful of default/fallback
	// strings (the "Unnamed Selector" placeholder here; the codec package
	// uses the same field for its own fallback strings). Nil means use
	// the literal English text untranslated.
	Localizer Localizer
}

// Localizer mirrors a gettext-style pgettext(msgctxt, msgid) lookup: an
// external collaborator the core only ever consumes from (spec §1). It is
// only called with literal msgids from this module's source (this package
// and anm2codec, through Document.Localize).
type Localizer func(msgctxt, msgid string) string

// locUnnamedSelectorCtx is the message context passed to Localizer when
// resolving the default name given to a selector inserted with an empty
// name.
const locUnnamedSelectorCtx = ".ptk.anm2"

func (d *Document) localize(msgctxt, msgid string) string {
	if d.Localizer != nil {
		return d.Localizer(msgctxt, msgid)
	}
	return msgid
}

// Localize resolves a fallback string through the document's Localizer,
// exported so the codec package can share the same lookup for the
// strings it emits into generated scripts (e.g. "Selector", "(None)").
func (d *Document) Localize(msgctxt, msgid string) string {
	return d.localize(msgctxt, msgid)
}

// New creates an empty document with default label "PSD" and
// ExclusiveSupportDefault true, per spec §3.1/§4.1.
func New() *Document {
	return &Document{
		Version:                 1,
		Label:                   defaultLabel,
		ExclusiveSupportDefault: true,
		nextID:                  1,
	}
}

const defaultLabel = "PSD"

// NextID returns the counter that will be used to allocate the next new
// node ID. Exposed read-only for diagnostics and codec bookkeeping.
func (d *Document) NextID() ID { return d.nextID }

// allocID returns a fresh ID and advances the counter. IDs are never
// reused and never reset below the maximum already issued (spec §3.2).
func (d *Document) allocID() ID {
	id := d.nextID
	d.nextID++
	return id
}

// bumpNextID ensures the next-id counter exceeds id. Nothing calls it at
// present: Decode builds every node through the mutator layer, which
// allocates IDs with allocID.
func (d *Document) bumpNextID(id ID) {
	if id >= d.nextID {
		d.nextID = id + 1
	}
}
