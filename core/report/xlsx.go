package report

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/RaoulBonsso/GM/core/format"
	"github.com/RaoulBonsso/GM/core/school"
)

const (
	sheetHeaderRow = 4
	xlsxWidthRatio = 0.6 // relative column width -> excel character units
	amountNumFmt   = `#,##0 "F"`
)

func hex(c RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func xlsxFilename(prefix string, g *Generator) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, format.ISODate(g.now()))
}

// renderSheet writes the title block, the table and the summary caption of a
// tabular report into a single worksheet.
func renderSheet[T any](g *Generator, spec TabularReportSpec[T], records []T, title string) (*excelize.File, error) {
	if len(spec.Columns) == 0 {
		return nil, errors.Errorf("%s report has no columns", spec.Kind)
	}
	if title == "" {
		title = spec.Title
	}
	cfg := g.cfg
	sheet := spec.Title

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   title,
		Creator: cfg.School.Name,
		Created: g.now().UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: cfg.Fonts.Subtitle, Color: hex(cfg.HeaderColor)},
	})
	if err != nil {
		return nil, err
	}
	headStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: hex(cfg.Table.HeadText)},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex(cfg.Table.HeadFill)}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	stripeStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex(cfg.Table.AltRow)}},
	})
	if err != nil {
		return nil, err
	}

	amountFmt := amountNumFmt
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return nil, err
	}
	amountStripeStyle, err := f.NewStyle(&excelize.Style{
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex(cfg.Table.AltRow)}},
		CustomNumFmt: &amountFmt,
	})
	if err != nil {
		return nil, err
	}

	set := func(col, row int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	if err := set(1, 1, title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if spec.Subtitle != nil {
		if err := set(1, 2, spec.Subtitle(records)); err != nil {
			return nil, err
		}
	}

	t := BuildTable(spec, records)
	last, err := excelize.ColumnNumberToName(len(spec.Columns))
	if err != nil {
		return nil, err
	}
	for i, col := range spec.Columns {
		if err := set(i+1, sheetHeaderRow, col.Header); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, col.Width*xlsxWidthRatio); err != nil {
			return nil, err
		}
	}
	head := fmt.Sprintf("%d", sheetHeaderRow)
	if err := f.SetCellStyle(sheet, "A"+head, last+head, headStyle); err != nil {
		return nil, err
	}

	row := sheetHeaderRow
	for i, cells := range t.Rows {
		row++
		var values map[string]interface{}
		if spec.Values != nil {
			values = spec.Values(records[i])
		}
		if i%2 == 1 {
			r := fmt.Sprintf("%d", row)
			if err := f.SetCellStyle(sheet, "A"+r, last+r, stripeStyle); err != nil {
				return nil, err
			}
		}
		for j, c := range cells {
			v, ok := values[spec.Columns[j].Key]
			if !ok {
				if err := set(j+1, row, c); err != nil {
					return nil, err
				}
				continue
			}
			amount, isAmount := v.(decimal.Decimal)
			if !isAmount {
				if err := set(j+1, row, v); err != nil {
					return nil, err
				}
				continue
			}
			if err := set(j+1, row, amount.InexactFloat64()); err != nil {
				return nil, err
			}
			style := amountStyle
			if i%2 == 1 {
				style = amountStripeStyle
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return nil, err
			}
		}
	}

	if spec.Summary != nil {
		if c := spec.Summary(records); c.Text != "" {
			if err := set(1, row+2, c.Text); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func generateSheet[T any](g *Generator, spec TabularReportSpec[T], records []T, title string) (Artifact, error) {
	f, err := renderSheet(g, spec, records, title)
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "rendering %s spreadsheet", spec.Kind)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "rendering %s spreadsheet", spec.Kind)
	}
	return Artifact{
		Filename:    xlsxFilename(spec.FilePrefix, g),
		ContentType: ContentTypeXLSX,
		Content:     buf.Bytes(),
	}, nil
}

func (g *Generator) StudentSheet(students []school.Student, title string) (Artifact, error) {
	return generateSheet(g, StudentListSpec, students, title)
}

func (g *Generator) TeacherSheet(teachers []school.Teacher, title string) (Artifact, error) {
	return generateSheet(g, TeacherListSpec, teachers, title)
}

func (g *Generator) ExpenseSheet(expenses []school.Expense, title string) (Artifact, error) {
	return generateSheet(g, ExpenseListSpec, expenses, title)
}

func (g *Generator) PaymentSheet(payments []school.Payment, title string) (Artifact, error) {
	return generateSheet(g, PaymentListSpec, payments, title)
}
