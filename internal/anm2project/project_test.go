package anm2project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/oov/anm2edit/internal/anm2doc"
)

type fakeIO struct {
	files    map[string][]byte
	readErr  error
	writeErr error
}

func newFakeIO() *fakeIO {
	return &fakeIO{files: make(map[string][]byte)}
}

func (f *fakeIO) ReadFile(path string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	data, ok := f.files[path]
	if !ok {
		return nil, errNotFound
	}
	return data, nil
}

func (f *fakeIO) WriteFileAtomic(path string, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.files[path] = append([]byte(nil), data...)
	return nil
}

var errNotFound = fmt.Errorf("fake: file not found: %w", os.ErrNotExist)

func TestSave_SingleScript(t *testing.T) {
	d := anm2doc.New()
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if _, err := d.ItemInsertValue(selID, "Smile", "/mouth/smile"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	io := newFakeIO()

	if err := Save(context.Background(), io, d, "face.ptk.anm2"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := io.files["face.ptk.anm2"]; !ok {
		t.Fatalf("main file not written")
	}
	if _, ok := io.files["face.obj2"]; ok {
		t.Fatalf("obj2 file written for a non-multiscript path")
	}
	if d.Modified {
		t.Errorf("Modified = true after a successful save")
	}
}

func TestSave_MultiScriptWritesObj2Companion(t *testing.T) {
	d := anm2doc.New()
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if _, err := d.ItemInsertValue(selID, "Smile", "/mouth/smile"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	io := newFakeIO()

	if err := Save(context.Background(), io, d, "dir/@face.ptk.anm2"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := io.files["dir/@face.ptk.anm2"]; !ok {
		t.Fatalf("main file not written")
	}
	obj2, ok := io.files["dir/@face.ptk.obj2"]
	if !ok {
		t.Fatalf("obj2 companion not written")
	}
	if !strings.Contains(string(obj2), "@OverwriteSelector") {
		t.Errorf("obj2 content missing section header: %s", obj2)
	}
}

func TestSave_NoExtensionAppendsObj2(t *testing.T) {
	d := anm2doc.New()
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if _, err := d.ItemInsertValue(selID, "Smile", "/mouth/smile"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	io := newFakeIO()

	if err := Save(context.Background(), io, d, "@face"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := io.files["@face.obj2"]; !ok {
		t.Fatalf("obj2 companion not derived for an extensionless path")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	d := anm2doc.New()
	d.SetPSDPath("C:/work/face.psd")
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if _, err := d.ItemInsertValue(selID, "Smile", "/mouth/smile"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	io := newFakeIO()

	if err := Save(context.Background(), io, d, "face.ptk.anm2"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	d2, err := Load(context.Background(), io, "face.ptk.anm2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d2.PSDPath != d.PSDPath {
		t.Errorf("PSDPath = %q, want %q", d2.PSDPath, d.PSDPath)
	}
	if !d2.VerifyChecksum() {
		t.Errorf("VerifyChecksum = false for a file this package just wrote")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	io := newFakeIO()
	if _, err := Load(context.Background(), io, "missing.anm2"); !errors.Is(err, errNotFound) {
		t.Fatalf("err = %v, want wrapped errNotFound", err)
	}
}

func TestCanSave(t *testing.T) {
	d := anm2doc.New()
	if CanSave(d) {
		t.Errorf("CanSave = true for an empty document")
	}
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if CanSave(d) {
		t.Errorf("CanSave = true for a selector with no items")
	}
	if _, err := d.ItemInsertValue(selID, "Smile", "/mouth/smile"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	if !CanSave(d) {
		t.Errorf("CanSave = false for a selector with an item")
	}
}
