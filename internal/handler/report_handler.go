package handler

import (
	"fmt"
	"time"

	"escala-backend/internal/schedule"
	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	payroll *usecase.PayrollUsecase
}

func NewReportHandler(payroll *usecase.PayrollUsecase) *ReportHandler {
	return &ReportHandler{payroll: payroll}
}

// GET /api/admin/reports/payroll?year=2025&month=3
// Omitting month aggregates the whole year.
func (h *ReportHandler) GetPayroll(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")

	if year <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "year is required"})
	}
	if month < 0 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be 1-12"})
	}

	period := schedule.YearPeriod(year)
	if month > 0 {
		period = schedule.MonthPeriod(year, time.Month(month))
	}

	report, err := h.payroll.Report(period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	return c.JSON(fiber.Map{
		"year":        year,
		"month":       month,
		"hourly_rate": schedule.HourlyRate,
		"report":      report,
	})
}

// GET /api/admin/reports/payroll/export?year=2025&month=3
// Same numbers as GetPayroll, rendered as a spreadsheet download.
func (h *ReportHandler) ExportPayroll(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")

	if year <= 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "year and month are required"})
	}

	report, err := h.payroll.MonthlyReport(year, time.Month(month))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll"
	f.SetSheetName("Sheet1", sheet)

	title := fmt.Sprintf("Folha estimada %04d-%02d", year, month)
	f.SetCellValue(sheet, "A1", title)
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.MergeCell(sheet, "A1", "I1")

	headers := []string{"Employee", "Hours 40H", "Hours 20H", "Total Hours", "Gross (R$)", "Net (R$)", "Days Off", "Lost Hours", "Lost Value (R$)"}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, head)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00

	row := 4
	writeRow := func(name string, h40, h20, total int, gross, net float64, daysOff, lostHours int, lostValue float64) {
		values := []interface{}{name, h40, h20, total, gross, net, daysOff, lostHours, lostValue}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		grossCell, _ := excelize.CoordinatesToCellName(5, row)
		lostCell, _ := excelize.CoordinatesToCellName(9, row)
		f.SetCellStyle(sheet, grossCell, lostCell, moneyStyle)
		row++
	}

	for _, sum := range report.PerEmployee {
		writeRow(sum.Name,
			sum.Buckets[schedule.Bucket40H].Hours,
			sum.Buckets[schedule.Bucket20H].Hours,
			sum.TotalHours, sum.Gross, sum.Net,
			sum.DaysOff, sum.LostHours, sum.LostValue)
	}

	row++ // blank line before totals
	t := report.Totals
	writeRow("TOTAL", t.Hours40H, t.Hours20H, t.TotalHours, t.Gross, t.Net, t.DaysOff, t.LostHours, t.LostValue)

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "I", 14)

	filename := fmt.Sprintf("payroll_%04d_%02d.xlsx", year, month)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write spreadsheet"})
	}
	return nil
}
