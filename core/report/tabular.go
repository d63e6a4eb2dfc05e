package report

import "github.com/pkg/errors"

type (
	// Column describes one table column. Width is relative: widths are scaled
	// to the printable page width.
	Column struct {
		Header string
		Key    string
		Width  float64
		Align  Align
	}

	// Row is a display row: column key -> formatted cell text.
	Row map[string]string

	// Caption is the summary line printed under a table.
	Caption struct {
		Text  string
		Bold  bool
		Align Align
	}

	// TabularReportSpec describes the list report of one record kind.
	TabularReportSpec[T any] struct {
		Kind       string
		Title      string // used when the caller gives none
		FilePrefix string
		Columns    []Column
		Project    func(T) Row
		Subtitle   func([]T) string
		Summary    func([]T) Caption
		// Values gives typed spreadsheet cells by column key. Keys it leaves
		// out are written as the projected text.
		Values func(T) map[string]interface{}
	}

	// Table is the projected content of a tabular report.
	Table struct {
		Header []string
		Rows   [][]string
	}
)

// BuildTable projects records through spec. Every row has exactly one cell
// per column; keys missing from the projection give empty cells.
func BuildTable[T any](spec TabularReportSpec[T], records []T) Table {
	t := Table{
		Header: make([]string, len(spec.Columns)),
		Rows:   make([][]string, 0, len(records)),
	}
	for i, col := range spec.Columns {
		t.Header[i] = col.Header
	}
	for _, rec := range records {
		var row Row
		if spec.Project != nil {
			row = spec.Project(rec)
		}
		cells := make([]string, len(spec.Columns))
		for i, col := range spec.Columns {
			cells[i] = row[col.Key]
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func renderTabular[T any](g *Generator, spec TabularReportSpec[T], records []T, title string) (*document, error) {
	if len(spec.Columns) == 0 {
		return nil, errors.Errorf("%s report has no columns", spec.Kind)
	}
	if title == "" {
		title = spec.Title
	}
	var subtitle string
	if spec.Subtitle != nil {
		subtitle = spec.Subtitle(records)
	}

	d := newDocument(g.cfg, g.now(), title, g.compress)
	d.firstPage()
	d.header(title, subtitle)
	d.table(spec.Columns, BuildTable(spec, records))
	if spec.Summary != nil {
		d.caption(spec.Summary(records))
	}
	d.footers()
	return d, nil
}

func generateTabular[T any](g *Generator, spec TabularReportSpec[T], records []T, title string) (Artifact, error) {
	d, err := renderTabular(g, spec, records, title)
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "rendering %s report", spec.Kind)
	}
	content, err := d.output()
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "rendering %s report", spec.Kind)
	}
	return Artifact{
		Filename:    listFilename(spec.FilePrefix, d.now),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

// columnWidths scales the relative widths to the printable width.
func columnWidths(cols []Column, avail float64) []float64 {
	var total float64
	for _, c := range cols {
		total += c.Width
	}
	widths := make([]float64, len(cols))
	for i, c := range cols {
		if total <= 0 {
			widths[i] = avail / float64(len(cols))
		} else {
			widths[i] = avail * c.Width / total
		}
	}
	return widths
}

// table draws t at the cursor, starting new pages (with the header row
// repeated) whenever the next row does not fit. A row taller than a whole
// page is split across pages line by line.
func (d *document) table(cols []Column, t Table) {
	style := d.cfg.Table
	widths := columnWidths(cols, d.contentWidth())
	aligns := make([]Align, len(cols))
	for i, c := range cols {
		aligns[i] = c.Align
		if aligns[i] == "" {
			aligns[i] = AlignLeft
		}
	}

	d.setFont("B", style.FontSize)
	header := d.cellLines(t.Header, widths)
	capacity := d.bottom() - d.cfg.PageTop - d.linesHeight(header)
	drawHeader := func() {
		d.setFont("B", style.FontSize)
		d.row(header, widths, aligns, style.HeadFill, style.HeadText)
		d.setFont("", style.FontSize)
	}
	drawHeader()

	for i, cells := range t.Rows {
		fill := white
		if i%2 == 1 {
			fill = style.AltRow
		}
		lines := d.cellLines(cells, widths)
		fresh := false
		for !d.fits(d.linesHeight(lines)) {
			n := d.linesFitting()
			if fresh && n < 1 {
				n = 1
			}
			if n > 0 && d.linesHeight(lines) > capacity {
				var head [][]string
				head, lines = splitLines(lines, n)
				d.row(head, widths, aligns, fill, d.cfg.TextColor)
			}
			d.newPage()
			drawHeader()
			fresh = true
		}
		d.row(lines, widths, aligns, fill, d.cfg.TextColor)
	}
}

// linesFitting is the number of table text lines that fit between the cursor
// and the footer.
func (d *document) linesFitting() int {
	avail := d.bottom() - d.cursor.Y - 2*d.cfg.Table.CellPadding
	if avail <= 0 {
		return 0
	}
	return int(avail / lineHeight(d.cfg.Table.FontSize))
}

// splitLines cuts every cell after its first n lines.
func splitLines(lines [][]string, n int) (head, rest [][]string) {
	head = make([][]string, len(lines))
	rest = make([][]string, len(lines))
	for i, l := range lines {
		k := n
		if k > len(l) {
			k = len(l)
		}
		head[i], rest[i] = l[:k], l[k:]
	}
	return head, rest
}

func (d *document) cellLines(cells []string, widths []float64) [][]string {
	pad := d.cfg.Table.CellPadding
	lines := make([][]string, len(cells))
	for i, c := range cells {
		lines[i] = wrapText(c, widths[i]-2*pad, d.measure)
	}
	return lines
}

func (d *document) linesHeight(lines [][]string) float64 {
	n := 1
	for _, l := range lines {
		if len(l) > n {
			n = len(l)
		}
	}
	return float64(n)*lineHeight(d.cfg.Table.FontSize) + 2*d.cfg.Table.CellPadding
}

// row draws one table row of wrapped cell lines in the current font and
// moves the cursor below it.
func (d *document) row(lines [][]string, widths []float64, aligns []Align, fill, color RGB) {
	pad := d.cfg.Table.CellPadding
	lh := lineHeight(d.cfg.Table.FontSize)
	h := d.linesHeight(lines)

	x, y := d.cfg.Margin, d.cursor.Y
	d.setDraw(d.cfg.Table.Border)
	d.pdf.SetLineWidth(0.1)
	for i := range lines {
		d.setFill(fill)
		d.pdf.Rect(x, y, widths[i], h, "FD")

		tx := x + pad
		switch aligns[i] {
		case AlignCenter:
			tx = x + widths[i]/2
		case AlignRight:
			tx = x + widths[i] - pad
		}
		d.setTextColor(color)
		for j, line := range lines[i] {
			d.text(tx, y+pad+lh*float64(j)+lh*0.75, line, aligns[i])
		}
		x += widths[i]
	}
	d.advance(h)
}

// caption prints the summary line below the table, only when it fits on the last page.
func (d *document) caption(c Caption) {
	const offset = 10
	if c.Text == "" || !d.fits(offset) {
		return
	}
	y := d.cursor.Y + offset
	if c.Bold {
		d.setFont("B", d.cfg.Fonts.Normal)
		d.setTextColor(d.cfg.HeaderColor)
	} else {
		d.setFont("I", d.cfg.Fonts.Small)
		d.setTextColor(d.cfg.LightTextColor)
	}
	x := d.cfg.Margin
	switch c.Align {
	case AlignRight:
		x = d.width - d.cfg.Margin
	case AlignCenter:
		x = d.width / 2
	}
	d.text(x, y, c.Text, c.Align)
	d.advance(offset)
}
