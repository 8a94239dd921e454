package billing

import (
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/internal/orders"
	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

// WindowDays bounds every billing report. Older pedidos stay in the
// database but never enter the dashboard.
const WindowDays = 90

// DateLayout is the per-day bucket key and the data column of the CSV.
const DateLayout = "02/01/2006"

const csvTimeLayout = "15:04"

// Service exposes the back-office billing reports.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
	Day(ctx context.Context, date string) ([]orders.OrderDTO, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type billingRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Order, error)
}

type service struct {
	repo billingRepository
	loc  *time.Location
	now  func() time.Time
}

// NewService constructs the billing service. Reports bucket days in the
// provided location, falling back to time.Local when nil.
func NewService(repo billingRepository, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, loc: loc, now: time.Now}
}

// Summary aggregates the last WindowDays of pedidos.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	now := s.now().In(s.loc)
	today := startOfDay(now)
	from := today.AddDate(0, 0, -(WindowDays - 1))

	records, err := s.repo.ListBetween(ctx, from, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load pedidos for summary")
	}

	summary := &Summary{
		WindowDays:    WindowDays,
		Orders:        len(records),
		GrandTotal:    decimal.Zero,
		TodayTotal:    decimal.Zero,
		Last7Total:    decimal.Zero,
		Last30Total:   decimal.Zero,
		AverageTicket: decimal.Zero,
	}

	last7 := today.AddDate(0, 0, -6)
	last30 := today.AddDate(0, 0, -29)

	byDay := make(map[string]*DayTotal)
	byPayment := make(map[string]*PaymentTotal)

	for i := range records {
		order := &records[i]
		created := order.CreatedAt.In(s.loc)

		summary.GrandTotal = summary.GrandTotal.Add(order.Total)
		if !created.Before(today) {
			summary.TodayTotal = summary.TodayTotal.Add(order.Total)
		}
		if !created.Before(last7) {
			summary.Last7Total = summary.Last7Total.Add(order.Total)
		}
		if !created.Before(last30) {
			summary.Last30Total = summary.Last30Total.Add(order.Total)
		}

		dayKey := created.Format(DateLayout)
		day, ok := byDay[dayKey]
		if !ok {
			day = &DayTotal{Date: dayKey, Total: decimal.Zero}
			byDay[dayKey] = day
		}
		day.Orders++
		day.Total = day.Total.Add(order.Total)

		paymentKey := order.PaymentMethod.String()
		payment, ok := byPayment[paymentKey]
		if !ok {
			payment = &PaymentTotal{PaymentMethod: paymentKey, Total: decimal.Zero}
			byPayment[paymentKey] = payment
		}
		payment.Orders++
		payment.Total = payment.Total.Add(order.Total)
	}

	if len(records) > 0 {
		summary.AverageTicket = summary.GrandTotal.
			Div(decimal.NewFromInt(int64(len(records)))).
			Round(2)
	}

	summary.ByDay = make([]DayTotal, 0, len(byDay))
	for _, day := range byDay {
		summary.ByDay = append(summary.ByDay, *day)
	}
	sort.Slice(summary.ByDay, func(i, j int) bool {
		a, _ := time.ParseInLocation(DateLayout, summary.ByDay[i].Date, s.loc)
		b, _ := time.ParseInLocation(DateLayout, summary.ByDay[j].Date, s.loc)
		return a.After(b)
	})

	summary.ByPayment = make([]PaymentTotal, 0, len(byPayment))
	for _, payment := range byPayment {
		summary.ByPayment = append(summary.ByPayment, *payment)
	}
	sort.Slice(summary.ByPayment, func(i, j int) bool {
		return summary.ByPayment[i].Total.GreaterThan(summary.ByPayment[j].Total)
	})

	return summary, nil
}

// Day returns the pedidos of one calendar day, for the dashboard drill-down.
// The date parameter uses DateLayout (dd/mm/yyyy).
func (s *service) Day(ctx context.Context, date string) ([]orders.OrderDTO, error) {
	day, err := time.ParseInLocation(DateLayout, date, s.loc)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "data inválida, use dd/mm/aaaa")
	}

	records, err := s.repo.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load pedidos for day")
	}

	result := make([]orders.OrderDTO, 0, len(records))
	for i := range records {
		result = append(result, *orders.FromModel(&records[i]))
	}
	return result, nil
}

// ExportCSV streams the billing window as a semicolon-separated report,
// one row per pedido, matching the spreadsheet the back office imports.
func (s *service) ExportCSV(ctx context.Context, w io.Writer) error {
	now := s.now().In(s.loc)
	today := startOfDay(now)
	from := today.AddDate(0, 0, -(WindowDays - 1))

	records, err := s.repo.ListBetween(ctx, from, today.AddDate(0, 0, 1))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load pedidos for export")
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	header := []string{"data", "hora", "numero_pedido", "modo", "forma_pagamento", "subtotal", "descontos", "taxa_entrega", "total"}
	if err := writer.Write(header); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write export header")
	}

	for i := range records {
		order := &records[i]
		created := order.CreatedAt.In(s.loc)
		row := []string{
			created.Format(DateLayout),
			created.Format(csvTimeLayout),
			strconv.FormatInt(order.Number, 10),
			order.Mode.String(),
			order.PaymentMethod.String(),
			order.Subtotal.StringFixed(2),
			order.Discounts.StringFixed(2),
			order.DeliveryFee.StringFixed(2),
			order.Total.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write export row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "flush export")
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
