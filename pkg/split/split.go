// Package split writes page groups of an open document out as separate PDF
// files. Validation is all-or-nothing: a single out-of-range index anywhere
// in the selection rejects the whole operation before any file is written.
package split

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
)

// Split writes one output file per group into a folder named
// "<base>_split" under outputDir, as part1.pdf, part2.pdf, and so on. Each
// group's pages come out in ascending order regardless of input order.
// Returns the paths written.
func Split(doc *pdf.Document, groups [][]int, outputDir string) ([]string, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("split: no page groups given")
	}

	for n, group := range groups {
		if len(group) == 0 {
			return nil, fmt.Errorf("split: group %d selects no pages", n+1)
		}
		for _, p := range group {
			if err := doc.CheckIndex(p); err != nil {
				return nil, err
			}
		}
	}

	base := strings.TrimSuffix(filepath.Base(doc.Path()), filepath.Ext(doc.Path()))
	folder := filepath.Join(outputDir, base+"_split")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	paths := make([]string, 0, len(groups))

	for n, group := range groups {
		pages := append([]int(nil), group...)
		sort.Ints(pages)

		sel := make([]string, len(pages))
		for i, p := range pages {
			sel[i] = fmt.Sprintf("%d", p+1)
		}

		outPath := filepath.Join(folder, fmt.Sprintf("part%d.pdf", n+1))
		if err := api.TrimFile(doc.Path(), outPath, sel, conf); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		paths = append(paths, outPath)
	}

	return paths, nil
}
