package report

import (
	"fmt"
	"strconv"

	"github.com/olprint/backoffice/internal/models"
)

// Page geometry in millimetres, A4 portrait.
const (
	PageWidth      = 210.0
	PageHeight     = 297.0
	MarginLeft     = 14.0
	MarginRight    = 196.0
	TopMargin      = 20.0
	BottomLimit    = 277.0
	BreakThreshold = 240.0
	FooterY        = 285.0
	HeaderHeight   = 8.0
	RowHeight      = 7.0
	StatStep       = 7.0
)

const (
	TableOrders   = "orders"
	TableLowStock = "low_stock"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type RGB struct{ R, G, B int }

var (
	colorPrimary  = RGB{79, 70, 229}
	colorAlert    = RGB{220, 38, 38}
	colorBlack    = RGB{0, 0, 0}
	colorMuted    = RGB{80, 80, 80}
	colorSubtitle = RGB{100, 100, 100}
	colorFaint    = RGB{150, 150, 150}
	colorRule     = RGB{200, 200, 200}
)

// Text is a single line drawn at a baseline position.
type Text struct {
	X, Y  float64
	Value string
	Size  float64
	Bold  bool
	Color RGB
	Align Align
}

// Rule is a horizontal separator line.
type Rule struct {
	X1, X2, Y float64
}

type Column struct {
	Title string
	Width float64
	Align Align
}

// TableRow is one body row. Index counts rows across every segment of the
// table and drives the alternating background.
type TableRow struct {
	Index int
	Y     float64
	Cells []string
}

// TableSegment is the part of a table that lands on one page, header included.
type TableSegment struct {
	Table      string
	HeaderY    float64
	Columns    []Column
	HeaderFill RGB
	AltFill    RGB
	Rows       []TableRow
}

type Page struct {
	Number int
	Texts  []Text
	Rules  []Rule
	Tables []TableSegment
	Footer string
}

// Layout is the full page plan of a report.
type Layout struct {
	Pages []Page
}

// PageCount returns the number of pages.
func (l Layout) PageCount() int {
	return len(l.Pages)
}

// RowCount returns the number of body rows of the named table across all pages.
func (l Layout) RowCount(table string) int {
	n := 0
	for _, p := range l.Pages {
		for _, seg := range p.Tables {
			if seg.Table == table {
				n += len(seg.Rows)
			}
		}
	}
	return n
}

var (
	orderColumns = []Column{
		{Title: "ID", Width: 24},
		{Title: "Cliente", Width: 52},
		{Title: "Data", Width: 24},
		{Title: "Status", Width: 30},
		{Title: "Itens", Width: 16, Align: AlignCenter},
		{Title: "Total", Width: 36, Align: AlignRight},
	}
	lowStockColumns = []Column{
		{Title: "Produto", Width: 62},
		{Title: "Marca", Width: 28},
		{Title: "Categoria", Width: 34},
		{Title: "Stock", Width: 20, Align: AlignCenter},
		{Title: "Preço", Width: 38, Align: AlignRight},
	}
)

// planner tracks the running vertical cursor while pages are laid out.
type planner struct {
	pages []*Page
	y     float64
}

func (p *planner) current() *Page {
	return p.pages[len(p.pages)-1]
}

func (p *planner) newPage() {
	p.pages = append(p.pages, &Page{Number: len(p.pages) + 1})
	p.y = TopMargin
}

func (p *planner) text(t Text) {
	page := p.current()
	page.Texts = append(page.Texts, t)
}

// table lays rows out from startY, continuing on new pages with the header
// repeated whenever a row would cross BottomLimit. The cursor ends below the
// last row.
func (p *planner) table(name string, columns []Column, headerFill, altFill RGB, rows [][]string, startY float64) {
	if startY+HeaderHeight+RowHeight > BottomLimit {
		p.newPage()
		startY = TopMargin
	}

	seg := TableSegment{Table: name, HeaderY: startY, Columns: columns, HeaderFill: headerFill, AltFill: altFill}
	y := startY + HeaderHeight
	for i, cells := range rows {
		if y+RowHeight > BottomLimit {
			page := p.current()
			page.Tables = append(page.Tables, seg)
			p.newPage()
			seg = TableSegment{Table: name, HeaderY: TopMargin, Columns: columns, HeaderFill: headerFill, AltFill: altFill}
			y = TopMargin + HeaderHeight
		}
		seg.Rows = append(seg.Rows, TableRow{Index: i, Y: y, Cells: cells})
		y += RowHeight
	}
	page := p.current()
	page.Tables = append(page.Tables, seg)
	p.y = y
}

// plan lays out the report. Footers are stamped in a final pass once the page
// count is known.
func plan(brand, generatedAt string, in Input) Layout {
	p := &planner{}
	p.newPage()

	p.text(Text{X: MarginLeft, Y: 20, Value: brand, Size: 24, Color: colorPrimary})
	p.text(Text{X: MarginLeft, Y: 28, Value: "Relatório de Gestão & Vendas", Size: 12, Color: colorSubtitle})
	p.text(Text{X: MarginLeft, Y: 35, Value: "Gerado em: " + generatedAt, Size: 10, Color: colorFaint})
	p.current().Rules = append(p.current().Rules, Rule{X1: MarginLeft, X2: MarginRight, Y: 40})

	p.text(Text{X: MarginLeft, Y: 50, Value: "Resumo Executivo", Size: 14, Color: colorBlack})
	p.y = 60
	for _, s := range in.Stats {
		if p.y > BottomLimit {
			p.newPage()
		}
		p.text(Text{X: MarginLeft, Y: p.y, Value: s.Label + ":", Size: 11, Color: colorMuted})
		p.text(Text{X: MarginRight, Y: p.y, Value: s.Value, Size: 11, Bold: true, Color: colorBlack, Align: AlignRight})
		p.y += StatStep
	}

	if p.y+10 > BottomLimit {
		p.newPage()
		p.y = TopMargin - 10
	}
	p.text(Text{X: MarginLeft, Y: p.y + 10, Value: "Últimos Pedidos", Size: 14, Color: colorBlack})
	p.table(TableOrders, orderColumns, colorPrimary, RGB{245, 247, 250}, orderRows(in.Orders), p.y+15)

	lowStockTitle := fmt.Sprintf("Produtos com Stock Baixo (< %d un)", models.CriticalStockThreshold)
	var tableY float64
	if p.y > BreakThreshold {
		p.newPage()
		p.text(Text{X: MarginLeft, Y: TopMargin, Value: lowStockTitle, Size: 14, Color: colorBlack})
		tableY = TopMargin + 5
	} else {
		p.text(Text{X: MarginLeft, Y: p.y + 15, Value: lowStockTitle, Size: 14, Color: colorBlack})
		tableY = p.y + 20
	}
	p.table(TableLowStock, lowStockColumns, colorAlert, RGB{254, 242, 242}, lowStockRows(in.Products), tableY)

	n := len(p.pages)
	out := Layout{Pages: make([]Page, n)}
	for i, page := range p.pages {
		page.Footer = fmt.Sprintf("Página %d de %d - Documento Confidencial %s", i+1, n, brand)
		out.Pages[i] = *page
	}
	return out
}

func orderRows(orders []models.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID,
			o.CustomerName,
			FormatDate(o.Date),
			string(o.Status),
			strconv.Itoa(o.Items),
			FormatCurrency(o.Total),
		})
	}
	return rows
}

func lowStockRows(products []models.Product) [][]string {
	rows := [][]string{}
	for _, p := range products {
		if !p.IsCritical() {
			continue
		}
		rows = append(rows, []string{
			p.Name,
			p.Brand,
			p.Category,
			strconv.Itoa(p.Stock),
			FormatCurrency(p.Price),
		})
	}
	return rows
}
