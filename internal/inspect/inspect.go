// Package inspect reads back a written PDF to check that rendering produced
// a usable document.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/tabula"
)

// Sentinel errors for verification.
var (
	ErrNotPDF      = errors.New("not a PDF file")
	ErrTooFewPages = errors.New("too few pages")
)

// pdfMagic is the header every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// checkHeader fails with ErrNotPDF unless path starts with the PDF header.
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return fmt.Errorf("%w: %s", ErrNotPDF, path)
	}
	if !bytes.Equal(head, pdfMagic) {
		return fmt.Errorf("%w: %s", ErrNotPDF, path)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	if err := checkHeader(path); err != nil {
		return 0, err
	}

	ext := tabula.Open(path)
	defer ext.Close()

	n, err := ext.PageCount()
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}

// Text returns the extracted text of every page, in page order.
func Text(path string) (string, error) {
	if err := checkHeader(path); err != nil {
		return "", err
	}

	ext := tabula.Open(path)
	defer ext.Close()

	text, _, err := ext.Text()
	if err != nil {
		return "", fmt.Errorf("extracting text of %s: %w", path, err)
	}
	return text, nil
}

// Verify checks that path is a PDF with at least minPages pages and returns
// the page count.
func Verify(path string, minPages int) (int, error) {
	n, err := PageCount(path)
	if err != nil {
		return 0, err
	}
	if n < minPages {
		return n, fmt.Errorf("%w: %s has %d, want at least %d", ErrTooFewPages, path, n, minPages)
	}
	return n, nil
}
