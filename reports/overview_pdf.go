// Package reports renders dashboard data to files.
package reports

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// OverviewPDF writes the admin overview as a one-page A4 report.
func OverviewPDF(w io.Writer, ov *services.Overview, branchName func(string) string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sangem overview", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Sangem - Operations Overview")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated "+ov.GeneratedAt.Format("02 Jan 2006 15:04 MST"))
	pdf.Ln(10)

	rating := "-"
	if ov.AverageRating != nil {
		rating = fmt.Sprintf("%.1f / 5 (%d reviews)", *ov.AverageRating, ov.Reviews)
	}
	summary := [][2]string{
		{"Total orders", fmt.Sprintf("%d (%d pending, %d delivered)", ov.TotalOrders, ov.PendingOrders, ov.DeliveredOrders)},
		{"Revenue", utils.FormatRupees(decimal.NewFromFloat(ov.Revenue))},
		{"Dishes", fmt.Sprintf("%d", ov.Dishes)},
		{"Delivery partners", fmt.Sprintf("%d (%d active, %d on delivery)", ov.Partners, ov.ActivePartners, ov.OnDeliveryPartners)},
		{"Average rating", rating},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range summary {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	if len(ov.RevenueByBranch) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Revenue by branch")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(80, 7, "Branch", "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 7, "Orders", "1", 0, "R", true, 0, "")
		pdf.CellFormat(60, 7, "Revenue", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, br := range ov.RevenueByBranch {
			pdf.CellFormat(80, 7, branchName(br.BranchID), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, fmt.Sprintf("%d", br.Orders), "1", 0, "R", false, 0, "")
			pdf.CellFormat(60, 7, utils.FormatRupees(decimal.NewFromFloat(br.Revenue)), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Orders, last 7 days")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, d := range ov.LastSevenDays {
		pdf.CellFormat(40, 7, d.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", d.Orders), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render overview pdf: %w", err)
	}
	return pdf.Output(w)
}
