package scanfill

import "testing"

func TestPixelCacheInsertOnce(t *testing.T) {
	edges := []lineEdge{{col0: 0, row0: 0, col1: 5, row1: 5}}
	c := newPixelCache(edges)

	if !c.insert(2, 2) {
		t.Error("first insert should return true")
	}
	if c.insert(2, 2) {
		t.Error("second insert of same pixel should return false")
	}
	if !c.contains(2, 2) {
		t.Error("contains should report true after insert")
	}
	if c.contains(4, 4) {
		t.Error("contains should report false for a pixel never inserted")
	}
}
