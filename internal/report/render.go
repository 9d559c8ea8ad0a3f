package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const fontFamily = "Helvetica"

// cp1252 converts UTF-8 text to the single-byte encoding of the PDF core fonts.
// Characters outside Windows-1252 are replaced.
func cp1252(s string) string {
	out, err := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).String(s)
	if err != nil {
		return s
	}
	return out
}

type renderer struct {
	pdf *fpdf.Fpdf
}

// render draws every page of the layout, then revisits each page to stamp its footer.
func render(l Layout) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(MarginLeft, TopMargin, PageWidth-MarginRight)
	r := &renderer{pdf: pdf}

	for _, page := range l.Pages {
		pdf.AddPage()
		for _, rule := range page.Rules {
			pdf.SetDrawColor(colorRule.R, colorRule.G, colorRule.B)
			pdf.Line(rule.X1, rule.Y, rule.X2, rule.Y)
		}
		for _, t := range page.Texts {
			r.text(t)
		}
		for _, seg := range page.Tables {
			r.table(seg)
		}
	}

	if pdf.PageCount() != len(l.Pages) {
		return nil, fmt.Errorf("page count mismatch: layout has %d pages, document has %d", len(l.Pages), pdf.PageCount())
	}
	for i, page := range l.Pages {
		pdf.SetPage(i + 1)
		r.text(Text{X: PageWidth / 2, Y: FooterY, Value: page.Footer, Size: 8, Color: colorFaint, Align: AlignCenter})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) font(size float64, bold bool, c RGB) {
	style := ""
	if bold {
		style = "B"
	}
	r.pdf.SetFont(fontFamily, style, size)
	r.pdf.SetTextColor(c.R, c.G, c.B)
}

func (r *renderer) text(t Text) {
	r.font(t.Size, t.Bold, t.Color)
	s := cp1252(t.Value)
	x := t.X
	switch t.Align {
	case AlignCenter:
		x -= r.pdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= r.pdf.GetStringWidth(s)
	}
	r.pdf.Text(x, t.Y, s)
}

func (r *renderer) table(seg TableSegment) {
	r.font(9, true, RGB{255, 255, 255})
	r.pdf.SetFillColor(seg.HeaderFill.R, seg.HeaderFill.G, seg.HeaderFill.B)
	x := MarginLeft
	for _, col := range seg.Columns {
		r.pdf.SetXY(x, seg.HeaderY)
		r.pdf.CellFormat(col.Width, HeaderHeight, cp1252(col.Title), "", 0, alignStr(col.Align), true, 0, "")
		x += col.Width
	}

	r.font(9, false, colorBlack)
	for _, row := range seg.Rows {
		fill := row.Index%2 == 1
		if fill {
			r.pdf.SetFillColor(seg.AltFill.R, seg.AltFill.G, seg.AltFill.B)
		}
		x := MarginLeft
		for i, col := range seg.Columns {
			cell := ""
			if i < len(row.Cells) {
				cell = r.fit(cp1252(row.Cells[i]), col.Width-2)
			}
			r.pdf.SetXY(x, row.Y)
			r.pdf.CellFormat(col.Width, RowHeight, cell, "", 0, alignStr(col.Align), fill, 0, "")
			x += col.Width
		}
	}
}

// fit shortens s with an ellipsis until it fits width. s is already cp1252.
func (r *renderer) fit(s string, width float64) string {
	if r.pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "\x85"
	b := []byte(s)
	for len(b) > 0 && r.pdf.GetStringWidth(string(b)+ellipsis) > width {
		b = b[:len(b)-1]
	}
	return string(b) + ellipsis
}

func alignStr(a Align) string {
	switch a {
	case AlignCenter:
		return "CM"
	case AlignRight:
		return "RM"
	default:
		return "LM"
	}
}
