package dashboard

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"hr-dashboard/internal/leave"
	"hr-dashboard/internal/persona"

	"github.com/jung-kurt/gofpdf"
)

// ReportContentType is served with RenderReport output.
const ReportContentType = "application/pdf"

var reportColumns = []struct {
	title string
	width float64
}{
	{"Employee", 38},
	{"Type", 34},
	{"From", 24},
	{"To", 24},
	{"Days", 12},
	{"Status", 22},
	{"Processed by", 36},
}

// RenderReport writes the leave requests a persona can see as a one-table PDF.
func RenderReport(p persona.Persona, counts StatusCounts, leaves []leave.LeaveResponse, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Leave report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Leave report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Prepared for: %s (%s)", p.Name, p.Title))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %d  Pending: %d  Approved: %d  Rejected: %d",
		counts.Total, counts.Pending, counts.Approved, counts.Rejected))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range reportColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(leaves) == 0 {
		pdf.CellFormat(0, 7, "No leave requests", "1", 1, "C", false, 0, "")
	}
	for _, l := range leaves {
		processedBy := ""
		if l.ProcessedBy != nil {
			processedBy = *l.ProcessedBy
		}
		row := []string{
			l.EmployeeName,
			l.LeaveType,
			l.StartDate,
			l.EndDate,
			strconv.Itoa(l.TotalDays),
			l.Status,
			processedBy,
		}
		for i, col := range reportColumns {
			pdf.CellFormat(col.width, 7, row[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
