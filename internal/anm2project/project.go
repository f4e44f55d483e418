package anm2project

import (
	"context"
	"fmt"
	"strings"

	"github.com/oov/anm2edit/internal/anm2codec"
	"github.com/oov/anm2edit/internal/anm2doc"
)

// CanSave reports whether doc has any content worth writing: at least one
// selector holding at least one item. An empty document produces a script
// that does nothing, so callers use this to grey out a save action rather
// than writing a no-op file.
func CanSave(doc *anm2doc.Document) bool {
	if doc == nil {
		return false
	}
	for i := 0; i < doc.SelectorCount(); i++ {
		sel, ok := doc.Selector(doc.SelectorIDAt(i))
		if ok && len(sel.Items) > 0 {
			return true
		}
	}
	return false
}

// Save writes doc to path. A file name beginning with "@" selects
// multi-script mode: the primary file gets an "@Selector" section header
// and a companion .obj2 file (derived from path by replacing a trailing
// ".anm2" extension, or appending ".obj2" if there is none) carries the
// parts-override script. Save clears doc's Modified flag on success.
func Save(_ context.Context, io IO, doc *anm2doc.Document, path string) error {
	if io == nil || doc == nil || path == "" {
		return ErrInvalidArgument
	}

	isMultiscript := strings.HasPrefix(baseName(path), "@")

	var content []byte
	var err error
	if isMultiscript {
		content, err = anm2codec.EncodeMultiScript(doc)
	} else {
		content, err = anm2codec.Encode(doc)
	}
	if err != nil {
		return fmt.Errorf("generating script: %w", err)
	}
	if err := io.WriteFileAtomic(path, content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if isMultiscript {
		obj2Content, err := anm2codec.EncodeOverwrite(doc)
		if err != nil {
			return fmt.Errorf("generating overwrite script: %w", err)
		}
		obj2Path := deriveObj2Path(path)
		if err := io.WriteFileAtomic(obj2Path, obj2Content); err != nil {
			return fmt.Errorf("writing %s: %w", obj2Path, err)
		}
	}

	doc.Modified = false
	return nil
}

// Load reads path and decodes it into a fresh Document.
func Load(_ context.Context, io IO, path string) (*anm2doc.Document, error) {
	if io == nil || path == "" {
		return nil, ErrInvalidArgument
	}
	data, err := io.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := anm2codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

// deriveObj2Path mirrors the reference save path's extension swap:
// "@foo.anm2" becomes "@foo.obj2"; anything else gets ".obj2" appended.
func deriveObj2Path(path string) string {
	if strings.HasSuffix(path, ".anm2") {
		return path[:len(path)-len(".anm2")] + ".obj2"
	}
	return path + ".obj2"
}

func baseName(path string) string {
	base := path
	for i := 0; i < len(path); i++ {
		if path[i] == '/' || path[i] == '\\' {
			base = path[i+1:]
		}
	}
	return base
}
