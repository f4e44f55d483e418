package anm2codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/oov/anm2edit/internal/anm2doc"
)

// Decode parses a .anm2/.obj2 script produced by Encode/EncodeOverwrite,
// rebuilding the document tree entirely through anm2doc's mutator layer
// (selectors, items, and params all get freshly allocated IDs; nothing is
// spliced in by direct struct construction). The returned document's
// StoredChecksum and CalculatedChecksum fields let a caller detect
// hand-edited scripts; Decode itself never rejects a checksum mismatch.
func Decode(data []byte) (*anm2doc.Document, error) {
	headerStart, err := findHeaderStart(data)
	if err != nil {
		return nil, err
	}
	jsonStart := headerStart + len(jsonPrefix)
	jsonEnd := bytes.Index(data[jsonStart:], []byte(jsonSuffix))
	if jsonEnd < 0 {
		return nil, ErrInvalidFormat
	}
	jsonEnd += jsonStart

	headerJSON := data[jsonStart:jsonEnd]
	var h wireHeader
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	bodyStart := jsonEnd + len(jsonSuffix)
	if bodyStart < len(data) && data[bodyStart] == '\n' {
		bodyStart++
	}
	body := data[bodyStart:]

	doc := anm2doc.New()
	doc.Version = h.Version
	doc.PSDPath = h.PSD
	doc.Label = h.Label
	doc.DefaultCharacterID = h.DefaultCharacterID
	if h.Information != "" {
		info := h.Information
		doc.Information = &info
	}
	if h.ExclusiveSupportDefault != nil {
		doc.ExclusiveSupportDefault = *h.ExclusiveSupportDefault
	} else {
		doc.ExclusiveSupportDefault = true
	}

	for _, sel := range h.Selectors {
		selID, err := doc.SelectorInsert(anm2doc.NoID, sel.Group)
		if err != nil {
			return nil, err
		}
		for _, raw := range sel.Items {
			if err := decodeItem(doc, selID, raw); err != nil {
				return nil, err
			}
		}
	}

	doc.StoredChecksum = h.Checksum
	doc.CalculatedChecksum = fmt.Sprintf("%016x", calculateChecksum(body))
	doc.Modified = false
	doc.ClearUndoHistory()

	return doc, nil
}

func decodeItem(doc *anm2doc.Document, selID anm2doc.ID, raw json.RawMessage) error {
	shape := firstNonSpace(raw)
	switch shape {
	case '{':
		var wi wireAnimationItem
		if err := json.Unmarshal(raw, &wi); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if wi.Script == "" {
			return fmt.Errorf("%w: animation item missing script", ErrInvalidFormat)
		}
		itemID, err := doc.ItemInsertAnimation(selID, wi.Script, wi.Name)
		if err != nil {
			return err
		}
		for _, kv := range wi.Params {
			if _, err := doc.ParamInsert(itemID, anm2doc.NoID, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	case '[':
		var pair [2]string
		if err := json.Unmarshal(raw, &pair); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		_, err := doc.ItemInsertValue(selID, pair[0], pair[1])
		return err
	default:
		return fmt.Errorf("%w: unrecognised item shape", ErrInvalidFormat)
	}
}

func firstNonSpace(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return c
		}
	}
	return 0
}

// findHeaderStart locates the offset of the --[==[PTK: marker, requiring
// it to begin a line (either the very start of the file or immediately
// after a newline) so a layer value that happens to contain the literal
// text can never be mistaken for the real header.
func findHeaderStart(data []byte) (int, error) {
	offset := 0
	for {
		idx := bytes.Index(data[offset:], []byte(jsonPrefix))
		if idx < 0 {
			return 0, ErrInvalidFormat
		}
		pos := offset + idx
		if pos == 0 || data[pos-1] == '\n' {
			return pos, nil
		}
		offset = pos + 1
	}
}
