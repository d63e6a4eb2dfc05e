package report

import (
	"fmt"
	"strings"

	"github.com/RaoulBonsso/GM/core/format"
)

const (
	bannerHeight = 35.0
	titleBoxTop  = 45.0
	titleBoxW    = 160.0
	footerTop    = 25.0 // from the bottom edge
)

// header draws the institution banner and the title box on the current page.
func (d *document) header(title, subtitle string) {
	cfg := d.cfg
	w := d.width

	d.setFill(cfg.HeaderColor)
	d.pdf.Rect(0, 0, w, bannerHeight, "F")
	d.setFill(cfg.AccentColor)
	d.pdf.Rect(0, bannerHeight, w, 3, "F")

	d.setTextColor(white)
	d.setFont("B", 16)
	d.text(w/2, 15, strings.ToUpper(cfg.School.Name), AlignCenter)
	d.setFont("", 9)
	d.text(w/2, 22, cfg.School.Address, AlignCenter)
	d.text(w/2, 28, fmt.Sprintf("Tél: %s | Email: %s", cfg.School.Phone, cfg.School.Email), AlignCenter)

	boxH := 20.0
	if subtitle != "" {
		boxH = 30
	}
	d.setFill(paleBlue)
	d.setDraw(cfg.HeaderColor)
	d.pdf.SetLineWidth(0.5)
	d.pdf.RoundedRect(w/2-titleBoxW/2, titleBoxTop, titleBoxW, boxH, 3, "1234", "FD")

	d.setTextColor(cfg.HeaderColor)
	d.fitFont(title, "B", cfg.Fonts.Title, cfg.Fonts.Section, titleBoxW-10)
	d.text(w/2, 55, title, AlignCenter)
	if subtitle != "" {
		d.setTextColor(cfg.TextColor)
		d.fitFont(subtitle, "", cfg.Fonts.Subtitle, cfg.Fonts.Normal, titleBoxW-10)
		d.text(w/2, 65, subtitle, AlignCenter)
	}

	generatedY := 70.0
	if subtitle != "" {
		generatedY = 75
	}
	d.setTextColor(cfg.LightTextColor)
	d.setFont("I", cfg.Fonts.Small)
	d.text(w-cfg.Margin, generatedY, "Document généré le "+format.Date(d.now), AlignRight)
}

// footers numbers every page of the document. It must run once all content is drawn.
func (d *document) footers() {
	cfg := d.cfg
	w, h := d.width, d.height
	n := d.pdf.PageCount()

	for i := 1; i <= n; i++ {
		d.pdf.SetPage(i)
		d.invalidateFont()

		d.setFill(cfg.AccentColor)
		d.pdf.Rect(0, h-footerTop, w, 2, "F")
		d.setFill(cfg.HeaderColor)
		d.pdf.SetAlpha(0.1, "Normal")
		d.pdf.Rect(0, h-footerTop+2, w, footerTop-2, "F")
		d.pdf.SetAlpha(1, "Normal")

		d.setFill(white)
		d.setDraw(cfg.HeaderColor)
		d.pdf.SetLineWidth(0.3)
		d.pdf.RoundedRect(w/2-20, h-18, 40, 12, 2, "1234", "FD")

		d.setTextColor(cfg.HeaderColor)
		d.setFont("B", cfg.Fonts.Small)
		d.text(w/2, h-10, fmt.Sprintf("Page %d/%d", i, n), AlignCenter)

		d.setTextColor(cfg.LightTextColor)
		d.setFont("", cfg.Fonts.Small)
		d.text(cfg.Margin, h-13, cfg.School.Name, AlignLeft)
		d.text(cfg.Margin, h-8, "Tél: "+cfg.School.Phone, AlignLeft)
		d.text(w-cfg.Margin, h-10, fmt.Sprintf("© %d - Tous droits réservés", d.now.Year()), AlignRight)
	}
	d.pdf.SetPage(n)
}
