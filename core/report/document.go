package report

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"

	ptToMM = 25.4 / 72
)

// PageCursor is the write position of a document session.
// Y only moves down on a page and is reset by newPage.
type PageCursor struct {
	X    float64
	Y    float64
	Page int
}

// document is a single rendering session over one fpdf canvas.
type document struct {
	pdf    *fpdf.Fpdf
	cfg    Config
	tr     func(string) string
	now    time.Time
	width  float64
	height float64
	cursor PageCursor
}

func newDocument(cfg Config, now time.Time, title string, compress bool) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(compress)
	pdf.SetCreationDate(now)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(cfg.School.Name, true)
	pdf.SetCreator(cfg.School.Name, true)

	w, h := pdf.GetPageSize()
	return &document{
		pdf:    pdf,
		cfg:    cfg,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""), // cp1252
		now:    now,
		width:  w,
		height: h,
	}
}

// firstPage opens page 1 with the cursor right below the header chrome.
func (d *document) firstPage() {
	d.pdf.AddPage()
	d.cursor = PageCursor{X: d.cfg.Margin, Y: d.cfg.BodyTop, Page: d.pdf.PageNo()}
}

func (d *document) newPage() {
	d.pdf.AddPage()
	d.cursor = PageCursor{X: d.cfg.Margin, Y: d.cfg.PageTop, Page: d.pdf.PageNo()}
}

func (d *document) bottom() float64 {
	return d.height - d.cfg.FooterReserve
}

// fits reports whether a block of height h can be drawn at the cursor.
func (d *document) fits(h float64) bool {
	return d.cursor.Y+h <= d.bottom()
}

// place reserves a block of height h and returns its top edge. Blocks are
// separated by SectionGap unless they open a page; a block that does not fit
// moves to a new page.
func (d *document) place(h float64) float64 {
	if d.cursor.Y > d.pageTop() {
		d.advance(d.cfg.SectionGap)
	}
	if !d.fits(h) {
		d.newPage()
	}
	return d.cursor.Y
}

func (d *document) pageTop() float64 {
	if d.cursor.Page <= 1 {
		return d.cfg.BodyTop
	}
	return d.cfg.PageTop
}

func (d *document) advance(dy float64) {
	if dy > 0 {
		d.cursor.Y += dy
	}
}

func (d *document) contentWidth() float64 {
	return d.width - 2*d.cfg.Margin
}

func (d *document) setFont(style string, size float64) {
	d.pdf.SetFont(d.cfg.Fonts.Family, style, size)
}

// invalidateFont forces the next setFont to be written out. fpdf skips font
// operators matching its own state, which is stale after SetPage.
func (d *document) invalidateFont() {
	d.pdf.SetFontSize(1)
}

func (d *document) setFill(c RGB) {
	d.pdf.SetFillColor(c.R, c.G, c.B)
}

func (d *document) setDraw(c RGB) {
	d.pdf.SetDrawColor(c.R, c.G, c.B)
}

func (d *document) setTextColor(c RGB) {
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

// measure returns the width of s in the current font.
func (d *document) measure(s string) float64 {
	return d.pdf.GetStringWidth(d.tr(s))
}

// text writes s with its baseline at y; x is the left edge, center or right edge depending on align.
func (d *document) text(x, y float64, s string, align Align) {
	if s == "" {
		return
	}
	switch align {
	case AlignCenter:
		x -= d.measure(s) / 2
	case AlignRight:
		x -= d.measure(s)
	}
	d.pdf.Text(x, y, d.tr(s))
}

// fitFont shrinks the font, down to minSize, until s is no wider than maxW.
func (d *document) fitFont(s, style string, size, minSize, maxW float64) {
	d.setFont(style, size)
	for size > minSize && d.measure(s) > maxW {
		size--
		d.setFont(style, size)
	}
}

func (d *document) output() ([]byte, error) {
	if err := d.pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "drawing document")
	}
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "writing document")
	}
	return buf.Bytes(), nil
}

// lineHeight is the height of one text line of the given point size.
func lineHeight(size float64) float64 {
	return size * ptToMM * 1.3
}

// wrapText breaks s into lines no wider than maxW, on word boundaries.
// Words wider than maxW are split. Explicit newlines are kept.
func wrapText(s string, maxW float64, measure func(string) float64) []string {
	if strings.TrimSpace(s) == "" {
		return []string{""}
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var line string
		for _, word := range strings.Fields(para) {
			if measure(word) > maxW {
				if line != "" {
					lines = append(lines, line)
				}
				pieces := splitWord(word, maxW, measure)
				lines = append(lines, pieces[:len(pieces)-1]...)
				line = pieces[len(pieces)-1]
				continue
			}
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && measure(candidate) > maxW {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func splitWord(word string, maxW float64, measure func(string) float64) []string {
	var pieces []string
	var cur []rune
	for _, r := range word {
		if len(cur) > 0 && measure(string(cur)+string(r)) > maxW {
			pieces = append(pieces, string(cur))
			cur = nil
		}
		cur = append(cur, r)
	}
	return append(pieces, string(cur))
}

// wrapValue splits values longer than limit runes into two lines, on the last
// space at or before limit when there is one.
func wrapValue(v string, limit int) []string {
	v = strings.TrimSpace(v)
	if limit <= 0 || utf8.RuneCountInString(v) <= limit {
		return []string{v}
	}
	rs := []rune(v)
	cut := -1
	for i := limit; i > 0; i-- {
		if rs[i] == ' ' {
			cut = i
			break
		}
	}
	if cut < 0 {
		return []string{string(rs[:limit]), string(rs[limit:])}
	}
	return []string{
		strings.TrimSpace(string(rs[:cut])),
		strings.TrimSpace(string(rs[cut+1:])),
	}
}
