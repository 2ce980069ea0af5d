// Package merge concatenates PDF files in listed order.
package merge

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
)

// ErrInsufficientSources is returned when fewer than two source files are
// supplied.
var ErrInsufficientSources = errors.New("merge: at least 2 source files required")

// Merge appends the full page sequence of every source, in listed order, into
// a new document at outPath. Every source must carry the %PDF signature;
// validation happens before anything is written.
func Merge(paths []string, outPath string) error {
	if len(paths) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientSources, len(paths))
	}

	for _, p := range paths {
		if err := pdf.CheckSignature(p); err != nil {
			return err
		}
	}

	conf := model.NewDefaultConfiguration()
	if err := api.MergeCreateFile(paths, outPath, false, conf); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("failed to merge: %w", err)
	}
	return nil
}
