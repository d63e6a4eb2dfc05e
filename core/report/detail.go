package report

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	identityHeight  = 40.0
	signatureHeight = 40.0
	signatureTop    = 70.0 // from the bottom edge
	photoSize       = 30.0
)

type (
	// Field is one label/value pair of a detail report.
	Field struct {
		Label string
		Value string
	}

	// Section is a titled group of fields. Height is the fixed box height;
	// it is not recomputed from the content.
	Section struct {
		Title  string
		Height float64
		Left   []Field
		Right  []Field
	}

	// Identity is the name block opening a profile sheet.
	Identity struct {
		Name  string
		ID    string
		Badge string
	}

	// DetailLayout is the content a DetailReportSpec derives from one record.
	DetailLayout struct {
		Subtitle string
		Identity *Identity
		Sections []Section
	}

	// DetailReportSpec describes the single record report of one kind.
	DetailReportSpec[T any] struct {
		Kind       string
		Title      string
		FilePrefix string
		LabelWidth float64
		Flat       bool // headed label/value listing instead of boxed sections
		Photo      bool
		Signatures []string
		ID         func(T) string
		Layout     func(T, time.Time) DetailLayout
	}
)

func renderDetail[T any](g *Generator, spec DetailReportSpec[T], rec T) (*document, error) {
	if spec.Layout == nil {
		return nil, errors.Errorf("%s report has no layout", spec.Kind)
	}
	now := g.now()
	layout := spec.Layout(rec, now)

	d := newDocument(g.cfg, now, spec.Title, g.compress)
	d.firstPage()
	d.header(spec.Title, layout.Subtitle)
	if layout.Identity != nil {
		d.identity(*layout.Identity, spec.Photo)
	}
	for _, s := range layout.Sections {
		if spec.Flat {
			d.flatSection(s)
		} else {
			d.boxedSection(s, spec.LabelWidth)
		}
	}
	if len(spec.Signatures) > 0 {
		d.signatures(spec.Signatures)
	}
	d.footers()
	return d, nil
}

func generateDetail[T any](g *Generator, spec DetailReportSpec[T], rec T) (Artifact, error) {
	d, err := renderDetail(g, spec, rec)
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "rendering %s report", spec.Kind)
	}
	content, err := d.output()
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "rendering %s report", spec.Kind)
	}
	var id string
	if spec.ID != nil {
		id = spec.ID(rec)
	}
	return Artifact{
		Filename:    detailFilename(spec.FilePrefix, id, d.now),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

func (d *document) identity(id Identity, photo bool) {
	cfg := d.cfg
	w := d.width
	y := d.place(identityHeight)

	d.setFill(paleBlue)
	d.setDraw(cfg.HeaderColor)
	d.pdf.SetLineWidth(0.5)
	d.pdf.RoundedRect(cfg.Margin, y, d.contentWidth(), identityHeight, 3, "1234", "FD")

	d.setTextColor(cfg.HeaderColor)
	d.setFont("B", 16)
	d.text(w/2, y+15, strings.ToUpper(id.Name), AlignCenter)
	d.setTextColor(cfg.TextColor)
	d.setFont("", cfg.Fonts.Normal)
	d.text(w/2, y+25, "Identifiant: "+id.ID, AlignCenter)

	if id.Badge != "" {
		d.setFill(cfg.AccentColor)
		d.pdf.SetAlpha(0.2, "Normal")
		d.pdf.RoundedRect(w/2-30, y+28, 60, 10, 2, "1234", "F")
		d.pdf.SetAlpha(1, "Normal")
		d.setTextColor(cfg.HeaderColor)
		d.setFont("B", cfg.Fonts.Normal)
		d.text(w/2, y+35, id.Badge, AlignCenter)
	}

	if photo {
		px, py := w-cfg.Margin-40, y+5
		d.setDraw(cfg.HeaderColor)
		d.setFill(paleGrey)
		d.pdf.RoundedRect(px, py, photoSize, photoSize, 2, "1234", "FD")
		d.setTextColor(cfg.LightTextColor)
		d.setFont("", cfg.Fonts.Small)
		d.text(px+photoSize/2, py+photoSize/2, "PHOTO", AlignCenter)
	}
	d.advance(identityHeight)
}

func (d *document) boxedSection(s Section, labelW float64) {
	cfg := d.cfg
	w := d.width
	y := d.place(s.Height)

	d.setFill(paleBlue)
	d.setDraw(cfg.HeaderColor)
	d.pdf.SetLineWidth(0.5)
	d.pdf.RoundedRect(cfg.Margin, y, d.contentWidth(), s.Height, 3, "1234", "FD")

	d.setTextColor(cfg.HeaderColor)
	d.setFont("B", cfg.Fonts.Section)
	d.text(w/2, y+10, s.Title, AlignCenter)
	d.setDraw(cfg.AccentColor)
	d.pdf.SetLineWidth(0.3)
	d.pdf.Line(cfg.Margin+20, y+15, w-cfg.Margin-20, y+15)

	d.fieldColumn(cfg.Margin+10, y+25, s.Left, labelW)
	d.fieldColumn(w/2+10, y+25, s.Right, labelW)
	d.advance(s.Height)
}

// fieldColumn writes label/value rows. A wrapped value continues on the line
// beneath without moving the following rows.
func (d *document) fieldColumn(x, y float64, fields []Field, labelW float64) {
	cfg := d.cfg
	d.setTextColor(cfg.TextColor)
	for i, f := range fields {
		rowY := y + float64(i)*cfg.LineHeight
		d.setFont("B", cfg.Fonts.Normal)
		d.text(x, rowY, f.Label+":", AlignLeft)
		d.setFont("", cfg.Fonts.Normal)
		for j, line := range wrapValue(f.Value, cfg.WrapAt) {
			d.text(x+labelW, rowY+float64(j)*cfg.LineHeight, line, AlignLeft)
		}
	}
}

// flatSection writes an optional heading followed by "Label: value" lines.
func (d *document) flatSection(s Section) {
	cfg := d.cfg
	lh := cfg.LineHeight
	fields := append(append([]Field(nil), s.Left...), s.Right...)

	lines := 1
	for _, f := range fields {
		lines += len(wrapValue(f.Value, cfg.WrapAt))
	}
	if s.Title != "" {
		lines++
	}
	if !d.fits(float64(lines) * lh) {
		d.newPage()
	}

	x := cfg.Margin
	y := d.cursor.Y + 5
	if s.Title != "" {
		d.setTextColor(cfg.SecondaryColor)
		d.setFont("B", cfg.Fonts.Normal+2)
		d.text(x, y, s.Title+":", AlignLeft)
		y += lh
		x += 10
	}

	d.setTextColor(cfg.TextColor)
	for _, f := range fields {
		label := f.Label + ": "
		d.setFont("B", cfg.Fonts.Normal)
		d.text(x, y, label, AlignLeft)
		vx := x + d.measure(label)
		d.setFont("", cfg.Fonts.Normal)
		for _, line := range wrapValue(f.Value, cfg.WrapAt) {
			d.text(vx, y, line, AlignLeft)
			y += lh
		}
	}
	d.advance(y - d.cursor.Y)
}

// signatures pins the signature block near the bottom of the last page,
// on a fresh page when the content already reaches it.
func (d *document) signatures(labels []string) {
	cfg := d.cfg
	top := d.height - signatureTop
	if d.cursor.Y > top {
		d.newPage()
	}
	d.advance(top - d.cursor.Y)

	d.setFill(paleLilac)
	d.setDraw(cfg.HeaderColor)
	d.pdf.SetLineWidth(0.5)
	d.pdf.RoundedRect(cfg.Margin, top, d.contentWidth(), signatureHeight, 3, "1234", "FD")

	slotW := d.contentWidth() / float64(len(labels))
	lineLen := slotW - 20
	for i, label := range labels {
		x := cfg.Margin + 10 + float64(i)*slotW
		d.setTextColor(cfg.TextColor)
		d.setFont("B", cfg.Fonts.Normal)
		d.text(x, top+20, label+":", AlignLeft)
		d.setDraw(ruleGrey)
		d.pdf.SetLineWidth(0.2)
		d.pdf.Line(x, top+35, x+lineLen, top+35)
	}
	d.advance(signatureHeight)
}
