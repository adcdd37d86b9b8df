package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/Leihyn/Sentiment/deck"
)

// InventoryExcelService exports a content inventory of a deck using GoExcel
type InventoryExcelService struct{}

// NewInventoryExcelService creates a new inventory service
func NewInventoryExcelService() *InventoryExcelService {
	return &InventoryExcelService{}
}

var inventoryColumns = []struct {
	title string
	width float64
}{
	{"Slide", 8},
	{"Name", 16},
	{"Element", 10},
	{"Kind", 12},
	{"Text", 60},
	{"Highlight", 22},
	{"Status", 40},
}

// ExportDeckToExcel writes one row per piece of slide text, with any
// validation issues of its element in the Status column, and a second sheet
// listing every issue.
func (s *InventoryExcelService) ExportDeckToExcel(d *deck.Deck, issues []deck.Issue) ([]byte, error) {
	texts := d.Texts()
	if len(texts) == 0 {
		return nil, fmt.Errorf("no text to export")
	}

	wb := gospreadsheet.New()
	ws := wb.GetActiveSheet()
	ws.SetTitle("Inventory")

	header := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: Navy.hex(),
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		})

	data := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})
	for i, c := range inventoryColumns {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, c.title)
		ws.SetCellStyle(cellName, header)
		ws.SetColumnWidth(i, c.width)
	}
	ws.SetRowHeight(0, 25)

	byElement := make(map[[2]int][]string)
	for _, issue := range issues {
		key := [2]int{issue.Slide, issue.Element}
		byElement[key] = append(byElement[key], issue.Severity.String()+": "+issue.Message)
	}

	for i, t := range texts {
		status := "ok"
		if msgs := byElement[[2]int{t.Slide, t.Element}]; len(msgs) > 0 {
			status = strings.Join(msgs, "; ")
		}
		values := []interface{}{
			t.Slide + 1,
			d.Slides[t.Slide].Name,
			t.Element + 1,
			string(t.Kind),
			t.Value,
			t.Highlight,
			status,
		}
		row := i + 1
		for col, v := range values {
			cellName, _ := gospreadsheet.CellName(row, col)
			ws.SetCellValue(cellName, v)
			ws.SetCellStyle(cellName, data)
		}
		ws.SetRowHeight(row, 20)
	}
	ws.FreezePane("A2")

	if len(issues) > 0 {
		is, err := wb.AddSheet("Issues")
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet Issues: %w", err)
		}
		for i, title := range []string{"Severity", "Issue"} {
			cellName, _ := gospreadsheet.CellName(0, i)
			is.SetCellValue(cellName, title)
			is.SetCellStyle(cellName, header)
		}
		is.SetColumnWidth(0, 12)
		is.SetColumnWidth(1, 90)
		for i, issue := range issues {
			for col, v := range []string{issue.Severity.String(), issue.String()} {
				cellName, _ := gospreadsheet.CellName(i+1, col)
				is.SetCellValue(cellName, v)
				is.SetCellStyle(cellName, data)
			}
		}
	}

	wb.Properties.Title = d.Title + " inventory"
	wb.Properties.Creator = d.Author
	wb.Properties.Subject = d.Subject
	wb.Properties.Keywords = strings.Join(d.Keywords, ",")

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
