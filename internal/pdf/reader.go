package pdf

import (
	"fmt"
	"os"

	"github.com/a3tai/pdf-outliner/internal/outline"
	"github.com/ledongthuc/pdf"
)

const (
	// Default US Letter height, used when a page carries no MediaBox
	defaultPageHeight = 792.0

	// Y tolerance for treating two text runs as the same line
	lineTolerance = 0.5

	// Horizontal gap beyond this fraction of the font size separates words
	wordSpaceRatio = 0.3
)

// Reader turns PDF files into the page/span structure the outline core
// consumes. It wraps ledongthuc/pdf, which reports positioned text runs
// per page; runs sharing a baseline, font and size are merged into spans.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new PDF reader with the specified constraints
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
	}
}

// LoadPages opens a PDF file and returns its pages in document order,
// each with its height and block -> line -> span text structure. Any
// parse failure fails the whole document; no partial page set is returned.
func (r *Reader) LoadPages(path string) ([]outline.Page, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pages := make([]outline.Page, 0, pdfReader.NumPage())
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page, err := r.loadPage(pdfReader, pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", pageNum, err)
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// loadPage reads one page, recovering from parser panics on malformed
// content streams and surfacing them as errors.
func (r *Reader) loadPage(pdfReader *pdf.Reader, pageNum int) (page outline.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("PDF parser panic: %v", rec)
		}
	}()

	p := pdfReader.Page(pageNum)
	if p.V.IsNull() {
		return outline.Page{Height: defaultPageHeight}, nil
	}

	height := pageHeight(p)
	content := p.Content()

	return outline.Page{
		Height: height,
		Blocks: buildBlocks(content.Text, height),
	}, nil
}

// pageHeight reads the page's MediaBox height, falling back to US Letter
// when the box is absent or degenerate.
func pageHeight(p pdf.Page) float64 {
	mediaBox := p.V.Key("MediaBox")
	if mediaBox.IsNull() || mediaBox.Len() < 4 {
		return defaultPageHeight
	}

	height := mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	if height <= 0 {
		return defaultPageHeight
	}
	return height
}

// buildBlocks groups a page's positioned text runs into lines and spans.
// Runs on the same baseline with the same font and size merge into one
// span; wide horizontal gaps become word spaces. The result is a single
// block holding one line per baseline, with top-edge y coordinates
// measured from the top of the page.
func buildBlocks(texts []pdf.Text, height float64) []outline.Block {
	if len(texts) == 0 {
		return nil
	}

	var lines []outline.Line
	var current *spanBuilder

	flush := func() {
		if current != nil {
			lines = append(lines, outline.Line{Spans: []outline.RawSpan{current.build(height)}})
			current = nil
		}
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		if current != nil && current.accepts(t) {
			current.add(t)
			continue
		}

		flush()
		current = newSpanBuilder(t)
	}
	flush()

	return []outline.Block{{Lines: lines}}
}

// spanBuilder accumulates consecutive text runs into one span.
type spanBuilder struct {
	text     string
	font     string
	size     float64
	y        float64
	x0, x1   float64
	lastEnd  float64
	lastSize float64
}

func newSpanBuilder(t pdf.Text) *spanBuilder {
	return &spanBuilder{
		text:     t.S,
		font:     t.Font,
		size:     t.FontSize,
		y:        t.Y,
		x0:       t.X,
		x1:       t.X + t.W,
		lastEnd:  t.X + t.W,
		lastSize: t.FontSize,
	}
}

// accepts reports whether a run continues the current span: same font and
// size on the same baseline.
func (b *spanBuilder) accepts(t pdf.Text) bool {
	if t.Font != b.font || t.FontSize != b.size {
		return false
	}
	diff := t.Y - b.y
	if diff < 0 {
		diff = -diff
	}
	return diff <= lineTolerance
}

func (b *spanBuilder) add(t pdf.Text) {
	gap := t.X - b.lastEnd
	if gap > wordSpaceRatio*b.lastSize {
		b.text += " "
	}
	b.text += t.S

	if t.X < b.x0 {
		b.x0 = t.X
	}
	if t.X+t.W > b.x1 {
		b.x1 = t.X + t.W
	}
	b.lastEnd = t.X + t.W
	b.lastSize = t.FontSize
}

// build finalizes the span, converting the bottom-origin baseline into a
// top-origin top-edge y for the extractor's vertical band check.
func (b *spanBuilder) build(height float64) outline.RawSpan {
	topY := height - b.y - b.size
	if topY < 0 {
		topY = 0
	}

	return outline.RawSpan{
		Text:       b.text,
		BBox:       [4]float64{b.x0, topY, b.x1, topY + b.size},
		Size:       b.size,
		FontName:   b.font,
		StyleFlags: styleFlags(b.font),
	}
}
