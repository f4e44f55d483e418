package anm2codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oov/anm2edit/internal/anm2doc"
)

const (
	jsonPrefix = "--[==[PTK:"
	jsonSuffix = "]==]"

	ctxAnm2                = ".ptk.anm2"
	ctxUnselected           = ".ptk.anm2 Unselected item name for selector"
	ctxDefaultSelectorName  = ".ptk.anm2 default name for unnamed selector"
	ctxOverwrite            = ".ptk.anm2 OverwriteSelector"
	ctxMultiScriptSection   = ".ptk.anm2 multi-script section name"
)

// maxOverwriteParts is the number of --select@pN slots the obj2
// overwrite script exposes; the reference generator hard-codes the same
// limit.
const maxOverwriteParts = 16

// Encode renders doc as a single self-contained .anm2 script: the
// --[==[PTK:{json}]==] metadata line (carrying a checksum of everything
// that follows) followed by the generated Lua body.
func Encode(doc *anm2doc.Document) ([]byte, error) {
	body := buildBody(doc)
	checksum := calculateChecksum([]byte(body))
	headerJSON, err := buildHeaderJSON(doc, checksum)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.WriteString(jsonPrefix)
	out.WriteString(headerJSON)
	out.WriteString(jsonSuffix)
	out.WriteByte('\n')
	out.WriteString(body)
	return out.Bytes(), nil
}

// EncodeMultiScript renders doc as the primary section of a multi-file
// .anm2, prefixed with an "@Selector" section header. It is identical to
// Encode's output below that header.
func EncodeMultiScript(doc *anm2doc.Document) ([]byte, error) {
	single, err := Encode(doc)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	fmt.Fprintf(&out, "@%s\n", doc.Localize(ctxMultiScriptSection, "Selector"))
	out.Write(single)
	return out.Bytes(), nil
}

// EncodeOverwrite renders the companion .obj2 script: an "@OverwriteSelector"
// section followed by a metadata line whose checksum is always zero (obj2
// content is derived, not hand-edited, so there is nothing to tamper-check)
// and a parts-override body exposing up to maxOverwriteParts selectors as
// numbered part choices.
func EncodeOverwrite(doc *anm2doc.Document) ([]byte, error) {
	headerJSON, err := buildHeaderJSON(doc, 0)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	fmt.Fprintf(&out, "@%s\n", doc.Localize(ctxMultiScriptSection, "OverwriteSelector"))
	out.WriteString(jsonPrefix)
	out.WriteString(headerJSON)
	out.WriteString(jsonSuffix)
	out.WriteByte('\n')
	out.WriteString(buildOverwriteBody(doc))
	return out.Bytes(), nil
}

// Dump renders doc as indented JSON using the same §6.1 wire schema Encode
// embeds in a script header, for read-only inspection (diffing, CI checks)
// rather than for round-tripping through Decode.
func Dump(doc *anm2doc.Document) ([]byte, error) {
	raw, err := buildHeaderJSON(doc, 0)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildBody(doc *anm2doc.Document) string {
	var b strings.Builder

	if doc.Label != "" {
		fmt.Fprintf(&b, "--label:%s\n", doc.Label)
	}
	if info := effectiveInformation(doc, ctxAnm2); info != "" {
		fmt.Fprintf(&b, "--information:%s\n", info)
	}
	fmt.Fprintf(&b, "--check@exclusive:%s,%d\n", doc.Localize(ctxAnm2, "Exclusive Support"), boolToInt(doc.ExclusiveSupportDefault))

	for i, sel := range doc.Selectors {
		if len(sel.Items) == 0 {
			continue
		}
		groupName := sel.Name
		if groupName == "" {
			groupName = doc.Localize(ctxDefaultSelectorName, "Selector")
		}
		fmt.Fprintf(&b, "--select@sel%d:%s", i+1, groupName)
		fmt.Fprintf(&b, ",%s=0", doc.Localize(ctxUnselected, "(None)"))
		for j, it := range sel.Items {
			if name := displayName(it); name != "" {
				fmt.Fprintf(&b, ",%s=%d", sanitizeSelectorName(name), j+1)
			}
		}
		b.WriteByte('\n')
	}

	hasSelectors := false
	for _, sel := range doc.Selectors {
		if len(sel.Items) > 0 {
			hasSelectors = true
			break
		}
	}

	if hasSelectors {
		b.WriteString("require(\"PSDToolKit\").psdcall(function()\n")
	}
	cacheIndex := 0
	for i, sel := range doc.Selectors {
		if len(sel.Items) == 0 {
			continue
		}
		cacheIndex++
		fmt.Fprintf(&b, "require(\"PSDToolKit\").add_layer_selector(%d, function() return {\n", cacheIndex)
		for _, it := range sel.Items {
			if it.Kind == anm2doc.ItemAnimation {
				b.WriteString(generateAnimationCode(it))
			} else {
				fmt.Fprintf(&b, "  %s,\n", escapeLuaString(it.Value))
			}
		}
		fmt.Fprintf(&b, "} end, sel%d, {exclusive = exclusive ~= 0})\n", i+1)
	}
	if hasSelectors {
		b.WriteString("end)\n")
	}

	return b.String()
}

func buildOverwriteBody(doc *anm2doc.Document) string {
	var b strings.Builder

	if doc.Label != "" {
		fmt.Fprintf(&b, "--label:%s\n", doc.Label)
	}
	if info := effectiveInformation(doc, ctxOverwrite); info != "" {
		fmt.Fprintf(&b, "--information:%s\n", info)
	}
	fmt.Fprintf(&b, "--value@id:%s,%s\n", doc.Localize(ctxOverwrite, "Character ID"), escapeLuaString(doc.DefaultCharacterID))

	partNum := 0
	for _, sel := range doc.Selectors {
		if partNum >= maxOverwriteParts {
			break
		}
		if len(sel.Items) == 0 {
			continue
		}
		partNum++
		name := sel.Name
		if name == "" {
			name = doc.Localize(ctxDefaultSelectorName, "Selector")
		}
		fmt.Fprintf(&b, "--select@p%d:%s", partNum, name)
		fmt.Fprintf(&b, ",%s=0", doc.Localize(ctxUnselected, "(None)"))
		for j, it := range sel.Items {
			if dn := displayName(it); dn != "" {
				fmt.Fprintf(&b, ",%s=%d", sanitizeSelectorName(dn), j+1)
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("require(\"PSDToolKit\").psdcall(function()\n")
	b.WriteString("  require(\"PSDToolKit\").set_layer_selector_overwriter(id ~= \"\" and id or nil, {\n")
	partNum = 0
	for _, sel := range doc.Selectors {
		if partNum >= maxOverwriteParts {
			break
		}
		if len(sel.Items) == 0 {
			continue
		}
		partNum++
		fmt.Fprintf(&b, "    p%d = p%d ~= 0 and p%d or nil,\n", partNum, partNum, partNum)
	}
	b.WriteString("  }, obj)\nend)\n")

	return b.String()
}

func generateAnimationCode(it *anm2doc.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  require(\"%s\").new({\n", it.ScriptName)
	for _, p := range it.Params {
		fmt.Fprintf(&b, "    [%s] = %s,\n", escapeLuaString(p.Key), escapeLuaString(p.Value))
	}
	b.WriteString("  }),\n")
	return b.String()
}

// displayName returns the name used in --select@ lines: the item's own
// name, falling back to its script name for unnamed animation items.
func displayName(it *anm2doc.Item) string {
	if it.Name != "" {
		return it.Name
	}
	return it.ScriptName
}

// effectiveInformation returns the --information: text: the document's
// custom information if set to a non-empty string, otherwise an
// auto-generated description built from the PSD path's base name (and ""
// if there is no usable path, meaning no --information: line at all).
func effectiveInformation(doc *anm2doc.Document, msgctxt string) string {
	if doc.Information != nil && *doc.Information != "" {
		return *doc.Information
	}
	base := basename(doc.PSDPath)
	if base == "" {
		return ""
	}
	return fmt.Sprintf(doc.Localize(msgctxt, "PSD Layer Selector for %s"), base)
}

func basename(path string) string {
	base := path
	for i := 0; i < len(path); i++ {
		if path[i] == '/' || path[i] == '\\' {
			base = path[i+1:]
		}
	}
	return base
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func buildHeaderJSON(doc *anm2doc.Document, checksum uint64) (string, error) {
	var excl *bool
	if !doc.ExclusiveSupportDefault {
		f := false
		excl = &f
	}

	wireSels := make([]wireSelector, 0, len(doc.Selectors))
	for _, sel := range doc.Selectors {
		items := make([]json.RawMessage, 0, len(sel.Items))
		for _, it := range sel.Items {
			raw, err := marshalItem(it)
			if err != nil {
				return "", err
			}
			items = append(items, raw)
		}
		wireSels = append(wireSels, wireSelector{Group: sel.Name, Items: items})
	}

	info := ""
	if doc.Information != nil {
		info = *doc.Information
	}

	h := wireHeader{
		Version:                 doc.Version,
		Checksum:                fmt.Sprintf("%016x", checksum),
		Selectors:               wireSels,
		PSD:                     doc.PSDPath,
		Label:                   doc.Label,
		ExclusiveSupportDefault: excl,
		Information:             info,
		DefaultCharacterID:      doc.DefaultCharacterID,
	}

	raw, err := json.Marshal(h)
	if err != nil {
		return "", err
	}
	if bytes.Contains(raw, []byte(jsonSuffix)) {
		return "", ErrForbiddenSequence
	}
	return string(raw), nil
}

func marshalItem(it *anm2doc.Item) (json.RawMessage, error) {
	if it.Kind == anm2doc.ItemAnimation {
		params := make([][2]string, len(it.Params))
		for i, p := range it.Params {
			params[i] = [2]string{p.Key, p.Value}
		}
		return json.Marshal(wireAnimationItem{Script: it.ScriptName, Name: it.Name, Params: params})
	}
	return json.Marshal([2]string{it.Name, it.Value})
}
