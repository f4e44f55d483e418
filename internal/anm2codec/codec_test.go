package anm2codec

import (
	"strings"
	"testing"

	"github.com/oov/anm2edit/internal/anm2doc"
)

// ──────────────────────────────────────────────────────────────────────────────
// Round trips
// ──────────────────────────────────────────────────────────────────────────────

func TestRoundTrip_Basic(t *testing.T) {
	d := anm2doc.New()
	d.SetPSDPath("C:/work/face.psd")
	selID, err := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if err != nil {
		t.Fatalf("SelectorInsert: %v", err)
	}
	if _, err := d.ItemInsertValue(selID, "Smile", "/mouth/smile"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	if _, err := d.ItemInsertValue(selID, "Frown", "/mouth/frown"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}

	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(string(data), jsonPrefix) {
		t.Fatalf("encoded data does not start with header prefix: %q", data[:32])
	}

	d2, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d2.PSDPath != d.PSDPath {
		t.Errorf("PSDPath = %q, want %q", d2.PSDPath, d.PSDPath)
	}
	if d2.SelectorCount() != 1 {
		t.Fatalf("SelectorCount = %d, want 1", d2.SelectorCount())
	}
	sel2, ok := d2.Selector(d2.SelectorIDAt(0))
	if !ok || sel2.Name != "Mouth" {
		t.Fatalf("selector = %+v, want Name=Mouth", sel2)
	}
	if len(sel2.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(sel2.Items))
	}
	if sel2.Items[0].Value != "/mouth/smile" || sel2.Items[1].Value != "/mouth/frown" {
		t.Errorf("items = %+v", sel2.Items)
	}
	if !d2.VerifyChecksum() {
		t.Errorf("VerifyChecksum = false for freshly encoded data")
	}
}

func TestRoundTrip_AnimationWithParams(t *testing.T) {
	d := anm2doc.New()
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Eyes")
	itemID, err := d.ItemInsertAnimation(selID, "PSDToolKit.Blinker", "Blink")
	if err != nil {
		t.Fatalf("ItemInsertAnimation: %v", err)
	}
	if _, err := d.ParamInsert(itemID, anm2doc.NoID, "interval", "3.0"); err != nil {
		t.Fatalf("ParamInsert: %v", err)
	}
	if _, err := d.ParamInsert(itemID, anm2doc.NoID, "duration", "0.1"); err != nil {
		t.Fatalf("ParamInsert: %v", err)
	}

	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	d2, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sel2, _ := d2.Selector(d2.SelectorIDAt(0))
	if len(sel2.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(sel2.Items))
	}
	it := sel2.Items[0]
	if it.Kind != anm2doc.ItemAnimation || it.ScriptName != "PSDToolKit.Blinker" || it.Name != "Blink" {
		t.Fatalf("item = %+v", it)
	}
	if len(it.Params) != 2 || it.Params[0].Key != "interval" || it.Params[0].Value != "3.0" {
		t.Fatalf("params = %+v", it.Params)
	}
}

func TestRoundTrip_EmptySelectorSkippedInScriptButPreserved(t *testing.T) {
	d := anm2doc.New()
	_, _ = d.SelectorInsert(anm2doc.NoID, "Unused")
	filledID, _ := d.SelectorInsert(anm2doc.NoID, "Used")
	if _, err := d.ItemInsertValue(filledID, "A", "/a"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}

	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "--select@sel1:") {
		t.Errorf("empty selector produced a --select@ line: %s", body)
	}

	d2, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d2.SelectorCount() != 2 {
		t.Fatalf("SelectorCount = %d, want 2 (empty selector must survive in the header)", d2.SelectorCount())
	}
	sel0, _ := d2.Selector(d2.SelectorIDAt(0))
	if sel0.Name != "Unused" {
		// IDs are reassigned on decode; only order and name are guaranteed.
		t.Errorf("selector 0 name = %q, want %q", sel0.Name, "Unused")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Checksum tamper detection
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyChecksum_DetectsTampering(t *testing.T) {
	d := anm2doc.New()
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if _, err := d.ItemInsertValue(selID, "Smile", "/mouth/smile"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	headerStart, err := findHeaderStart(data)
	if err != nil {
		t.Fatalf("findHeaderStart: %v", err)
	}
	bodyStart := headerStart + strings.Index(string(data[headerStart:]), jsonSuffix) + len(jsonSuffix) + 1
	tampered := append([]byte(nil), data...)
	// flip a byte in the generated Lua body, leaving the header untouched.
	for i := bodyStart; i < len(tampered); i++ {
		if tampered[i] == '/' {
			tampered[i] = '\\'
			break
		}
	}

	d2, err := Decode(tampered)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d2.VerifyChecksum() {
		t.Errorf("VerifyChecksum = true for a tampered body")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Forbidden sequence rejection
// ──────────────────────────────────────────────────────────────────────────────

func TestEncode_ForbiddenSequenceRejected(t *testing.T) {
	d := anm2doc.New()
	selID, _ := d.SelectorInsert(anm2doc.NoID, "Mouth")
	if _, err := d.ItemInsertValue(selID, "]==]", "/x"); err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}
	if _, err := Encode(d); err != ErrForbiddenSequence {
		t.Fatalf("Encode error = %v, want ErrForbiddenSequence", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Invalid input
// ──────────────────────────────────────────────────────────────────────────────

func TestDecode_NotAScript(t *testing.T) {
	if _, err := Decode([]byte("just some lua\nprint(1)\n")); err != ErrInvalidFormat {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestDecode_HeaderMustStartALine(t *testing.T) {
	// the marker text appears mid-line, so it must not be mistaken for a
	// real header.
	data := []byte("print(\"--[==[PTK:\")\n")
	if _, err := Decode(data); err != ErrInvalidFormat {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// obj2 overwrite variant
// ──────────────────────────────────────────────────────────────────────────────

func TestEncodeOverwrite_CapsAtSixteenParts(t *testing.T) {
	d := anm2doc.New()
	for i := 0; i < 20; i++ {
		selID, _ := d.SelectorInsert(anm2doc.NoID, "")
		if _, err := d.ItemInsertValue(selID, "A", "/a"); err != nil {
			t.Fatalf("ItemInsertValue: %v", err)
		}
	}
	data, err := EncodeOverwrite(d)
	if err != nil {
		t.Fatalf("EncodeOverwrite: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "--select@p17:") {
		t.Errorf("obj2 body exposes more than 16 parts: %s", body)
	}
	if !strings.Contains(body, "--select@p16:") {
		t.Errorf("obj2 body missing the 16th part")
	}
	if !strings.Contains(body, `"checksum":"0000000000000000"`) {
		t.Errorf("obj2 header checksum is not the fixed zero value: %s", body)
	}
}
