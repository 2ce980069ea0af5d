// Package testpdf writes minimal single-use PDF fixtures for tests. Every
// page carries a unique content-stream marker so page orderings remain
// observable after reorder, split, and merge operations.
package testpdf

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
)

var markerRe = regexp.MustCompile(`1 0 0 1 0 (\d+) cm`)

// Marker returns the content-stream fragment identifying the page that sat at
// the given 1-based position when the file was written.
func Marker(pageNum int) string {
	return fmt.Sprintf("1 0 0 1 0 %d cm", pageNum)
}

// Write writes a minimal n-page PDF to path.
func Write(path string, n int) error {
	var buf bytes.Buffer

	// Object numbering: 1 catalog, 2 page tree, 2+i page i, 2+n+i its
	// content stream.
	size := 3 + 2*n
	offsets := make([]int, size)

	buf.WriteString("%PDF-1.4\n")

	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [")
	for i := 1; i <= n; i++ {
		if i > 1 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d 0 R", 2+i)
	}
	fmt.Fprintf(&buf, "] /Count %d /MediaBox [0 0 612 792] >>\nendobj\n", n)

	for i := 1; i <= n; i++ {
		offsets[2+i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /Contents %d 0 R >>\nendobj\n",
			2+i, 2+n+i)
	}

	for i := 1; i <= n; i++ {
		offsets[2+n+i] = buf.Len()
		content := fmt.Sprintf("q %s Q\n", Marker(i))
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			2+n+i, len(content), content)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", size)
	for i := 1; i < size; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xref)

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ReadOrder reports, for each page of the file at path in sequence, the
// 1-based position that page occupied when its fixture was written.
func ReadOrder(path string) ([]int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	order := make([]int, 0, doc.PageCount())
	for i := 0; i < doc.PageCount(); i++ {
		content, err := doc.PageContent(i)
		if err != nil {
			return nil, err
		}
		m := markerRe.FindSubmatch(content)
		if m == nil {
			return nil, fmt.Errorf("page %d carries no fixture marker", i)
		}
		n, err := strconv.Atoi(string(m[1]))
		if err != nil {
			return nil, err
		}
		order = append(order, n)
	}
	return order, nil
}
