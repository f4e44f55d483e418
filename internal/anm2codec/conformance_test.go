package anm2codec

import (
	"strings"
	"testing"

	"github.com/oov/anm2edit/internal/anm2doc"
)

// TestConformance_CrossSelectorMoveEmptiesSource exercises the open
// question recorded in the design ledger: moving an item into a different
// selector must leave the source selector present (possibly empty) and
// must make the destination selector's --select@ line appear where it
// previously had none.
func TestConformance_CrossSelectorMoveEmptiesSource(t *testing.T) {
	d := anm2doc.New()
	srcID, err := d.SelectorInsert(anm2doc.NoID, "Source")
	if err != nil {
		t.Fatalf("SelectorInsert(Source): %v", err)
	}
	dstID, err := d.SelectorInsert(anm2doc.NoID, "Dest")
	if err != nil {
		t.Fatalf("SelectorInsert(Dest): %v", err)
	}
	itemID, err := d.ItemInsertValue(srcID, "Only", "/only")
	if err != nil {
		t.Fatalf("ItemInsertValue: %v", err)
	}

	before, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode (before move): %v", err)
	}
	if !strings.Contains(string(before), "--select@sel1:") {
		t.Fatalf("expected source selector's line before the move: %s", before)
	}

	if err := d.ItemMove(itemID, dstID); err != nil {
		t.Fatalf("ItemMove across selectors: %v", err)
	}

	srcSel, ok := d.Selector(srcID)
	if !ok {
		t.Fatalf("source selector %d disappeared after move", srcID)
	}
	if len(srcSel.Items) != 0 {
		t.Fatalf("source selector still holds %d items after move", len(srcSel.Items))
	}
	dstSel, ok := d.Selector(dstID)
	if !ok || len(dstSel.Items) != 1 || dstSel.Items[0].ID != itemID {
		t.Fatalf("destination selector = %+v, want the moved item", dstSel)
	}

	after, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode (after move): %v", err)
	}
	if strings.Contains(string(after), "--select@sel1:") {
		t.Errorf("emptied source selector still produced a --select@ line: %s", after)
	}
	if !strings.Contains(string(after), "--select@sel2:") {
		t.Errorf("destination selector missing its --select@ line after the move: %s", after)
	}

	d2, err := Decode(after)
	if err != nil {
		t.Fatalf("Decode (after move): %v", err)
	}
	if d2.SelectorCount() != 2 {
		t.Fatalf("round-tripped selector count = %d, want 2 (empty source must survive)", d2.SelectorCount())
	}
	emptySel, _ := d2.Selector(d2.SelectorIDAt(0))
	filledSel, _ := d2.Selector(d2.SelectorIDAt(1))
	if len(emptySel.Items) != 0 {
		t.Errorf("round-tripped source selector = %+v, want empty", emptySel)
	}
	if len(filledSel.Items) != 1 || filledSel.Items[0].Value != "/only" {
		t.Errorf("round-tripped destination selector = %+v, want the moved item", filledSel)
	}

	if ok, err := d.Undo(); err != nil || !ok {
		t.Fatalf("Undo: ok=%v err=%v", ok, err)
	}
	srcSel, _ = d.Selector(srcID)
	if len(srcSel.Items) != 1 || srcSel.Items[0].ID != itemID {
		t.Fatalf("Undo did not restore the item to its source selector: %+v", srcSel)
	}
}
