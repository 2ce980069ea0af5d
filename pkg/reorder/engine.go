// Package reorder moves single pages within a PDF file and keeps a linear
// undo/redo history of those moves. The file is rebuilt through pdfcpu's
// page-collect primitive and swapped into place atomically, so an interrupted
// write never corrupts the original.
package reorder

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
)

// MoveOrder returns the 0-based page order that results from moving the page
// at source to target: the element is lifted out and reinserted, shifting the
// pages in between by one slot.
func MoveOrder(pageCount, source, target int) []int {
	order := make([]int, 0, pageCount)

	switch {
	case target > source:
		for i := 0; i < source; i++ {
			order = append(order, i)
		}
		for i := source; i < target; i++ {
			order = append(order, i+1)
		}
		order = append(order, source)
		for i := target + 1; i < pageCount; i++ {
			order = append(order, i)
		}
	case target < source:
		for i := 0; i < target; i++ {
			order = append(order, i)
		}
		order = append(order, source)
		for i := target; i < source; i++ {
			order = append(order, i)
		}
		for i := source + 1; i < pageCount; i++ {
			order = append(order, i)
		}
	default:
		for i := 0; i < pageCount; i++ {
			order = append(order, i)
		}
	}

	return order
}

// CollectSequence converts a 0-based page order into a pdfcpu page selection,
// compressing consecutive runs into "a-b" ranges.
func CollectSequence(order []int) []string {
	var sel []string
	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && order[j+1] == order[j]+1 {
			j++
		}
		if j == i {
			sel = append(sel, fmt.Sprintf("%d", order[i]+1))
		} else {
			sel = append(sel, fmt.Sprintf("%d-%d", order[i]+1, order[j]+1))
		}
		i = j + 1
	}
	return sel
}

// Engine rebuilds PDF files on disk with a new page order.
type Engine struct {
	conf *model.Configuration
}

// NewEngine returns an Engine using the default pdfcpu configuration.
func NewEngine() *Engine {
	return &Engine{conf: model.NewDefaultConfiguration()}
}

// Reorder moves the page at source to target within the file at path. The
// rebuilt document is written to a sibling temp file first and only renamed
// over the original after a fully successful write; the caller must reopen
// any handle it holds on the file. source == target is a no-op.
func (e *Engine) Reorder(path string, source, target int) error {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("failed to read page count: %w", err)
	}

	if source < 0 || source >= pageCount {
		return fmt.Errorf("%w: source %d not in [0, %d)", pdf.ErrInvalidPageIndex, source, pageCount)
	}
	if target < 0 || target >= pageCount {
		return fmt.Errorf("%w: target %d not in [0, %d)", pdf.ErrInvalidPageIndex, target, pageCount)
	}
	if source == target {
		return nil
	}

	sel := CollectSequence(MoveOrder(pageCount, source, target))

	tmp := path + ".tmp"
	if err := api.CollectFile(path, tmp, sel, e.conf); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rebuild document: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace original file: %w", err)
	}
	return nil
}
