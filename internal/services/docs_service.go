package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"reseller-console/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// DocsService renders settlement statements as PDF.
type DocsService struct {
	Settlements SettlementService
	RequestID   string
}

// GenerateStatement returns the PDF bytes and a download filename for batch batchID.
func (s DocsService) GenerateStatement(ctx context.Context, batchID int64) ([]byte, string, error) {
	summary, err := s.Settlements.Summary(ctx, batchID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_statement", fmt.Sprintf("batch_id=%d orders=%d", batchID, len(summary.Orders)))
	return buildStatementPDF(summary)
}

func buildStatementPDF(sum SettlementSummary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Settlement Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SETTLEMENT STATEMENT")
	pdf.Ln(12)

	partner := "-"
	if sum.Partner != nil {
		partner = safe(sum.Partner.Code, "-")
	}

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Batch No     : %s", safe(sum.Batch.BatchNo, "-")),
		fmt.Sprintf("Partner      : %s", partner),
		fmt.Sprintf("Period       : %s - %s", safe(sum.Batch.PeriodStart, "-"), safe(sum.Batch.PeriodEnd, "-")),
		fmt.Sprintf("Status       : %s", safe(sum.Batch.Status, "-")),
		fmt.Sprintf("Generated    : %s", utils.FormatDateTime(time.Now())),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, tr(l))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	widths := []float64{34, 22, 32, 32, 34, 34}
	header := []string{"Order No", "Model", "Sale (P2)", "Profit", "Small-B", "Big-B"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range sum.Orders {
		cells := []string{
			safe(row.Order.OrderNo, "-"),
			safe(string(row.Order.BusinessModel), "-"),
			yuan(row.Order.P2SalePrice),
			utils.FormatYuan(row.Result.TotalProfit),
			utils.FormatYuan(row.Result.SmallBCommission),
			utils.FormatYuan(row.Result.BigBProfit),
		}
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	totals := []string{
		fmt.Sprintf("Total (%d)", sum.Totals.Orders),
		"",
		utils.FormatYuan(sum.Totals.GMV),
		utils.FormatYuan(sum.Totals.TotalProfit),
		utils.FormatYuan(sum.Totals.SmallBCommission),
		utils.FormatYuan(sum.Totals.BigBProfit),
	}
	for i, c := range totals {
		align := "R"
		if i < 2 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, tr(c), "1", 0, align, false, 0, "")
	}
	pdf.Ln(10)

	if len(sum.MissingOrderIDs) > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Orders not found and excluded: %v", sum.MissingOrderIDs), "", "", false)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "SaaS orders report reseller margin (P2-P1) and big-B margin (P1-P0) separately; they need not add up to the total profit.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("STATEMENT_%s.pdf", safeFilenamePart(sum.Batch.BatchNo))
	return buf.Bytes(), filename, nil
}

func yuan(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return utils.FormatYuan(v.Decimal)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
