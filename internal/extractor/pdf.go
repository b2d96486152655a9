package extractor

import (
	"context"
	"fmt"
	"math"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/nguyentantai21042004/paper2podcast/pkg/executor"
)

type pdfReader struct{}

// NewPDFReader returns a PageReader backed by github.com/ledongthuc/pdf.
func NewPDFReader() PageReader {
	return pdfReader{}
}

func (pdfReader) Pages(ctx context.Context, path string) (pages []string, err error) {
	// The library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(page.Content().Text))
	}
	return pages, nil
}

const (
	// baseline shift that starts a new line, in points
	lineTolerance = 0.5
	// horizontal gap, relative to font size, read as a word break
	wordGap = 0.15
)

// pageText rebuilds the lines of a page from positioned glyphs, in content
// stream order. A change of baseline starts a new line; a visible gap
// between glyphs on one line becomes a space.
func pageText(glyphs []pdflib.Text) string {
	var sb strings.Builder
	var prev *pdflib.Text
	for i := range glyphs {
		g := &glyphs[i]
		if prev != nil {
			switch {
			case math.Abs(g.Y-prev.Y) > lineTolerance:
				sb.WriteByte('\n')
			case isSpace(prev.S) || isSpace(g.S):
				// spacing already in the text
			case g.X-(prev.X+prev.W) > g.FontSize*wordGap:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(g.S)
		prev = g
	}
	return sb.String()
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}

type pdftotextReader struct {
	exec   executor.Executor
	binary string
}

// NewPdftotextReader returns a PageReader that shells out to poppler's pdftotext.
func NewPdftotextReader(exec executor.Executor, binary string) PageReader {
	if binary == "" {
		binary = "pdftotext"
	}
	return pdftotextReader{exec: exec, binary: binary}
}

func (r pdftotextReader) Pages(ctx context.Context, path string) ([]string, error) {
	out, err := r.exec.Execute(ctx, r.binary, "-layout", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext terminates every page with a form feed.
	pages := strings.Split(out, "\f")
	if len(pages) > 1 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages, nil
}
