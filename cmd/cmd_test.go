package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/oov/anm2edit/internal/anm2project"
)

// fakeIO is an in-memory anm2project.IO test double.
type fakeIO struct {
	files map[string][]byte
}

func newFakeIO() *fakeIO {
	return &fakeIO{files: make(map[string][]byte)}
}

func (f *fakeIO) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return data, nil
}

func (f *fakeIO) WriteFileAtomic(path string, data []byte) error {
	f.files[path] = append([]byte(nil), data...)
	return nil
}

func run(t *testing.T, c interface {
	SetOut(w io.Writer)
	SetErr(w io.Writer)
	SetArgs([]string)
	Execute() error
}, args []string) (string, string, error) {
	t.Helper()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	c.SetOut(outBuf)
	c.SetErr(errBuf)
	c.SetArgs(args)
	err := c.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestInit_CreatesDocument(t *testing.T) {
	io := newFakeIO()
	c := NewInitCmd(io)
	out, _, err := run(t, c, []string{"--psd", "C:/work/face.psd", "face.ptk.anm2"})
	if err != nil {
		t.Fatalf("init: %v (out=%s)", err, out)
	}
	if !strings.Contains(out, "Initialized") {
		t.Errorf("stdout = %q, want it to mention Initialized", out)
	}
	if _, ok := io.files["face.ptk.anm2"]; !ok {
		t.Fatalf("init did not write face.ptk.anm2")
	}
}

func TestInit_AppliesProjectConfig(t *testing.T) {
	io := newFakeIO()
	io.files[".anm2edit.yml"] = []byte("psd_search_root: C:/work/face.psd\nexclusive_support_default: false\n")

	c := NewInitCmd(io)
	if _, _, err := run(t, c, []string{"face.ptk.anm2"}); err != nil {
		t.Fatalf("init: %v", err)
	}

	doc, err := anm2project.Load(context.Background(), io, "face.ptk.anm2")
	if err != nil {
		t.Fatalf("loading saved document: %v", err)
	}
	if doc.PSDPath != "C:/work/face.psd" {
		t.Errorf("PSDPath = %q, want the configured psd_search_root", doc.PSDPath)
	}
	if doc.ExclusiveSupportDefault {
		t.Errorf("ExclusiveSupportDefault = true, want the configured override (false)")
	}
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	io := newFakeIO()
	io.files["face.ptk.anm2"] = []byte("existing")
	c := NewInitCmd(io)
	if _, _, err := run(t, c, []string{"face.ptk.anm2"}); err == nil {
		t.Fatal("expected an error when the file already exists")
	}
}

func TestSelectorAddThenItemAddValue(t *testing.T) {
	io := newFakeIO()

	addSel := NewSelectorCmd(io)
	out, _, err := run(t, addSel, []string{"add", "--new", "--file", "face.ptk.anm2", "--name", "Mouth"})
	if err != nil {
		t.Fatalf("selector add: %v", err)
	}
	selID := strings.TrimSpace(out)
	if selID == "" || selID == "0" {
		t.Fatalf("selector add printed id = %q", out)
	}

	addItem := NewItemCmd(io)
	out, _, err = run(t, addItem, []string{"add-value", "--file", "face.ptk.anm2", "--before", selID, "--name", "Smile", "--value", "/mouth/smile"})
	if err != nil {
		t.Fatalf("item add-value: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("item add-value printed no id")
	}

	dump := NewDumpCmd(io)
	out, _, err = run(t, dump, []string{"--file", "face.ptk.anm2"})
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, "Mouth") || !strings.Contains(out, "/mouth/smile") {
		t.Errorf("dump output missing expected content: %s", out)
	}
}

func TestParamAddOnAnimationItem(t *testing.T) {
	io := newFakeIO()

	addSel := NewSelectorCmd(io)
	out, _, err := run(t, addSel, []string{"add", "--new", "--file", "face.ptk.anm2", "--name", "Eyes"})
	if err != nil {
		t.Fatalf("selector add: %v", err)
	}
	selID := strings.TrimSpace(out)

	addItem := NewItemCmd(io)
	out, _, err = run(t, addItem, []string{"add-animation", "--file", "face.ptk.anm2", "--before", selID, "--script", "PSDToolKit.Blinker", "--name", "Blink"})
	if err != nil {
		t.Fatalf("item add-animation: %v", err)
	}
	itemID := strings.TrimSpace(out)

	addParam := NewParamCmd(io)
	if _, _, err := run(t, addParam, []string{"add", "--file", "face.ptk.anm2", "--item", itemID, "--key", "interval", "--value", "3.0"}); err != nil {
		t.Fatalf("param add: %v", err)
	}

	dump := NewDumpCmd(io)
	out, _, err = run(t, dump, []string{"--file", "face.ptk.anm2"})
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, "interval") {
		t.Errorf("dump output missing param: %s", out)
	}
}

func TestUndo_NothingToUndoAfterFreshLoad(t *testing.T) {
	io := newFakeIO()
	initCmd := NewInitCmd(io)
	if _, _, err := run(t, initCmd, []string{"face.ptk.anm2"}); err != nil {
		t.Fatalf("init: %v", err)
	}

	undo := NewUndoCmd(io)
	out, _, err := run(t, undo, []string{"--file", "face.ptk.anm2"})
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !strings.Contains(out, "nothing to undo") {
		t.Errorf("stdout = %q, want nothing-to-undo", out)
	}
}

func TestDoctor_ReportsChecksumOK(t *testing.T) {
	io := newFakeIO()
	addSel := NewSelectorCmd(io)
	out, _, err := run(t, addSel, []string{"add", "--new", "--file", "face.ptk.anm2", "--name", "Mouth"})
	if err != nil {
		t.Fatalf("selector add: %v", err)
	}
	selID := strings.TrimSpace(out)
	addItem := NewItemCmd(io)
	if _, _, err := run(t, addItem, []string{"add-value", "--file", "face.ptk.anm2", "--before", selID, "--name", "Smile", "--value", "/mouth/smile"}); err != nil {
		t.Fatalf("item add-value: %v", err)
	}

	doctor := NewDoctorCmd(io)
	out, _, err = run(t, doctor, []string{"--file", "face.ptk.anm2"})
	if err != nil {
		t.Fatalf("doctor: %v (out=%s)", err, out)
	}
	if !strings.Contains(out, "checksum: ok") {
		t.Errorf("stdout = %q, want checksum: ok", out)
	}
}

func TestRootCmd_HasAllSubcommands(t *testing.T) {
	root := newRootCmdWithIO(newFakeIO())
	want := []string{"init", "selector", "item", "param", "undo", "redo", "dump", "doctor"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

var _ anm2project.IO = (*fakeIO)(nil)
