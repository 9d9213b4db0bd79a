package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/sable/internal/grapheme"
)

// Tab stops are fixed at every 8 columns; wide (East Asian) graphemes take
// the width go-runewidth reports for them.
const tabStop = 8

// cellWidth returns the terminal cell width of one grapheme cluster when it
// starts at display column col.
func cellWidth(cluster string, col int) int {
	if cluster == "\t" {
		return tabStop - col%tabStop
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// textWidth returns the rendered width of text starting at display column
// startCol.
func textWidth(text string, startCol int) int {
	col := startCol
	for _, cluster := range grapheme.Split(text) {
		col += cellWidth(cluster, col)
	}
	return col - startCol
}
