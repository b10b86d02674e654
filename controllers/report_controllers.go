package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/app"
	"github.com/yeremiapane/vastra-crm/services"
	"github.com/yeremiapane/vastra-crm/utils"
)

// ReportController serves the read-only aggregate pages. Aggregation never
// fails the request: a broken metric is zero and is listed in warnings.
type ReportController struct {
	Reports *services.ReportService
	Log     *logrus.Logger
	AppName string
	now     func() time.Time
}

func NewReportController(env *app.Env) *ReportController {
	return &ReportController{
		Reports: services.NewReportService(env.DB, env.Log, env.Now),
		Log:     env.Log,
		AppName: env.Config.AppName,
		now:     env.Now,
	}
}

// Dashboard -> GET /dashboard
func (rc *ReportController) Dashboard(c *gin.Context) {
	stats := rc.Reports.Dashboard(c.Request.Context())
	utils.RespondJSON(c, http.StatusOK, "Dashboard", gin.H{
		"stats":        stats,
		"chart_labels": stats.ChartLabels(),
		"chart_data":   stats.ChartData(),
	})
}

// Payments -> GET /payments
func (rc *ReportController) Payments(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Payments", rc.Reports.Payments(c.Request.Context()))
}

// Summary -> GET /reports
func (rc *ReportController) Summary(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Reports", rc.Reports.Summary(c.Request.Context()))
}

// ExportPDF -> GET /reports/export-pdf
func (rc *ReportController) ExportPDF(c *gin.Context) {
	summary := rc.Reports.Summary(c.Request.Context())

	var buf bytes.Buffer
	if err := rc.renderSummary(&buf, summary); err != nil {
		rc.Log.WithError(err).WithField(utils.RequestIDKey, c.GetString(utils.RequestIDKey)).
			Error("Render report PDF failed")
		utils.RespondError(c, ErrInternal.Code, ErrInternal.Message)
		return
	}

	filename := fmt.Sprintf("report-%s.pdf", utils.Compact(rc.now()))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (rc *ReportController) renderSummary(buf *bytes.Buffer, s services.Summary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(rc.AppName+" report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, rc.AppName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+rc.now().Format("02 Jan 2006 15:04"))
	pdf.Ln(12)

	row := func(label, value string) {
		pdf.CellFormat(90, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, value, "1", 1, "R", false, 0, "")
	}
	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
	}

	d := s.Dashboard
	section("Overview")
	row("Total orders", fmt.Sprint(d.TotalOrders))
	row("Total paid", utils.FormatRupees(d.TotalPaid))
	row("Total pending", utils.FormatRupees(d.TotalPending))
	row("Open follow-ups", fmt.Sprint(d.PendingFollowUps))
	pdf.Ln(6)

	p := s.Payments
	section("Payments")
	row("Paid this month ("+p.Month+")", utils.FormatRupees(p.PaidMonth))
	row("Pending this month ("+p.Month+")", utils.FormatRupees(p.PendingMonth))
	for _, mode := range sortedKeys(p.ModeSplit) {
		row("Paid orders via "+mode, fmt.Sprint(p.ModeSplit[mode]))
	}
	pdf.Ln(6)

	section("Orders per month")
	for _, m := range d.OrdersChart {
		row(m.Label, fmt.Sprint(m.Count))
	}

	if warnings := append(append([]string{}, d.Warnings...), p.Warnings...); len(warnings) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Unavailable metrics: %v", warnings), "", "L", false)
	}

	return pdf.Output(buf)
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
