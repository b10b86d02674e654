package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/models"
	"github.com/yeremiapane/vastra-crm/utils"
	"gorm.io/gorm"
)

const historyMonths = 6

// ReportService computes read-only aggregates. Reporting is best effort:
// a metric whose query fails is logged, stays at its zero value and is
// named in Warnings, and the other metrics are still returned.
type ReportService struct {
	db  *gorm.DB
	log *logrus.Logger
	now func() time.Time
}

func NewReportService(db *gorm.DB, log *logrus.Logger, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{db: db, log: log, now: now}
}

type MonthlyCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalOrders      int64            `json:"total_orders"`
	TotalPaid        int64            `json:"total_paid"`
	TotalPending     int64            `json:"total_pending"`
	PendingFollowUps int64            `json:"pending_followups"`
	OrdersChart      []MonthlyCount   `json:"orders_chart"`
	PaymentModeSplit map[string]int64 `json:"payment_mode_split"`
	Warnings         []string         `json:"warnings,omitempty"`
}

// ChartLabels and ChartData split the histogram for chart widgets.
func (d DashboardStats) ChartLabels() []string {
	labels := make([]string, len(d.OrdersChart))
	for i, m := range d.OrdersChart {
		labels[i] = m.Label
	}
	return labels
}

func (d DashboardStats) ChartData() []int64 {
	data := make([]int64, len(d.OrdersChart))
	for i, m := range d.OrdersChart {
		data[i] = m.Count
	}
	return data
}

type PaymentStats struct {
	PaidTotal    int64            `json:"paid_total"`
	PendingTotal int64            `json:"pending_total"`
	PaidMonth    int64            `json:"paid_month"`
	PendingMonth int64            `json:"pending_month"`
	Month        string           `json:"month"`
	ModeSplit    map[string]int64 `json:"mode_split"`
	Warnings     []string         `json:"warnings,omitempty"`
}

type Summary struct {
	Dashboard DashboardStats `json:"dashboard"`
	Payments  PaymentStats   `json:"payments"`
}

// collector runs metrics one at a time and records which ones failed.
type collector struct {
	log      *logrus.Logger
	warnings []string
}

func (c *collector) run(metric string, fn func() error) {
	if err := fn(); err != nil {
		c.log.WithError(err).WithField("metric", metric).Error("Report metric failed")
		c.warnings = append(c.warnings, metric)
	}
}

func (s *ReportService) Dashboard(ctx context.Context) DashboardStats {
	db := s.db.WithContext(ctx)
	c := &collector{log: s.log}
	stats := DashboardStats{OrdersChart: []MonthlyCount{}, PaymentModeSplit: map[string]int64{}}

	c.run("total_orders", func() error {
		return db.Model(&models.Order{}).Count(&stats.TotalOrders).Error
	})
	c.run("total_paid", func() (err error) {
		stats.TotalPaid, err = s.sumAmount(db, models.PaymentPaid, time.Time{}, time.Time{})
		return err
	})
	c.run("total_pending", func() (err error) {
		stats.TotalPending, err = s.sumAmount(db, models.PaymentPending, time.Time{}, time.Time{})
		return err
	})
	c.run("pending_followups", func() error {
		return db.Model(&models.FollowUp{}).
			Where("status = ?", models.FollowUpOpen).
			Count(&stats.PendingFollowUps).Error
	})
	c.run("orders_chart", func() error {
		chart, err := s.monthlyOrders(db, historyMonths)
		if err == nil {
			stats.OrdersChart = chart
		}
		return err
	})
	c.run("payment_mode_split", func() error {
		split, err := s.modeSplit(db, false)
		if err == nil {
			stats.PaymentModeSplit = split
		}
		return err
	})

	stats.Warnings = c.warnings
	s.log.WithFields(logrus.Fields{
		"total_orders":      stats.TotalOrders,
		"total_paid":        stats.TotalPaid,
		"total_pending":     stats.TotalPending,
		"pending_followups": stats.PendingFollowUps,
	}).Debug("Dashboard context")
	return stats
}

func (s *ReportService) Payments(ctx context.Context) PaymentStats {
	db := s.db.WithContext(ctx)
	c := &collector{log: s.log}
	monthStart := utils.BeginningOfMonth(s.now())
	nextMonth := utils.AddMonths(monthStart, 1)
	stats := PaymentStats{Month: utils.MonthLabel(monthStart), ModeSplit: map[string]int64{}}

	c.run("paid_total", func() (err error) {
		stats.PaidTotal, err = s.sumAmount(db, models.PaymentPaid, time.Time{}, time.Time{})
		return err
	})
	c.run("pending_total", func() (err error) {
		stats.PendingTotal, err = s.sumAmount(db, models.PaymentPending, time.Time{}, time.Time{})
		return err
	})
	c.run("paid_month", func() (err error) {
		stats.PaidMonth, err = s.sumAmount(db, models.PaymentPaid, monthStart, nextMonth)
		return err
	})
	c.run("pending_month", func() (err error) {
		stats.PendingMonth, err = s.sumAmount(db, models.PaymentPending, monthStart, nextMonth)
		return err
	})
	c.run("mode_split", func() error {
		split, err := s.modeSplit(db, true)
		if err == nil {
			stats.ModeSplit = split
		}
		return err
	})

	stats.Warnings = c.warnings
	return stats
}

func (s *ReportService) Summary(ctx context.Context) Summary {
	return Summary{Dashboard: s.Dashboard(ctx), Payments: s.Payments(ctx)}
}

// sumAmount totals order amounts for a payment status, optionally limited
// to order dates in [from, to).
func (s *ReportService) sumAmount(db *gorm.DB, status string, from, to time.Time) (int64, error) {
	var total int64
	q := db.Model(&models.Order{}).Where("payment_status = ?", status)
	if !from.IsZero() {
		q = q.Where("order_date >= ? AND order_date < ?", from, to)
	}
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// monthlyOrders counts orders per calendar month for the trailing n months
// ending with the current one, oldest first.
func (s *ReportService) monthlyOrders(db *gorm.DB, n int) ([]MonthlyCount, error) {
	current := utils.BeginningOfMonth(s.now())
	out := make([]MonthlyCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := utils.AddMonths(current, -i)
		end := utils.AddMonths(start, 1)

		var count int64
		err := db.Model(&models.Order{}).
			Where("order_date >= ? AND order_date < ?", start, end).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		out = append(out, MonthlyCount{Label: utils.MonthLabel(start), Count: count})
	}
	return out, nil
}

// modeSplit counts Paid orders per payment mode. With knownOnly the split
// is restricted to UPI and Cash.
func (s *ReportService) modeSplit(db *gorm.DB, knownOnly bool) (map[string]int64, error) {
	var rows []struct {
		Mode  string
		Total int64
	}
	q := db.Model(&models.Order{}).Where("payment_status = ?", models.PaymentPaid)
	if knownOnly {
		q = q.Where("payment_mode IN ?", models.PaidModes)
	}
	err := q.Select("payment_mode AS mode, COUNT(*) AS total").
		Group("payment_mode").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	split := make(map[string]int64, len(rows))
	for _, r := range rows {
		mode := r.Mode
		if mode == "" {
			mode = "Unknown"
		}
		split[mode] += r.Total
	}
	return split, nil
}
