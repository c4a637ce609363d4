package puxbay

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ReportParams bounds a report. Dates are YYYY-MM-DD; empty fields are
// left to the server's defaults.
type ReportParams struct {
	StartDate string
	EndDate   string
	Branch    string
}

func (p ReportParams) values() url.Values {
	q := url.Values{}
	setIf(q, "start_date", p.StartDate)
	setIf(q, "end_date", p.EndDate)
	setIf(q, "branch", p.Branch)
	return q
}

// ReportsService handles reports and analytics API calls
type ReportsService struct {
	d Doer
}

// SalesSummary returns sales and order totals for the period
func (s *ReportsService) SalesSummary(ctx context.Context, params ReportParams) (*SalesSummary, error) {
	return Call[SalesSummary](ctx, s.d, http.MethodGet, withQuery("reports/sales-summary/", params.values()), nil)
}

// ProductPerformance returns the best performing products, at most limit
// of them. Branch is ignored by this report.
func (s *ReportsService) ProductPerformance(ctx context.Context, params ReportParams, limit int) ([]Product, error) {
	q := params.values()
	q.Del("branch")
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	products, err := Call[[]Product](ctx, s.d, http.MethodGet, withQuery("reports/product-performance/", q), nil)
	if err != nil {
		return nil, err
	}
	return *products, nil
}

// CustomerAnalytics returns new customers, retention and lifetime value for
// the period. Branch is ignored by this report.
func (s *ReportsService) CustomerAnalytics(ctx context.Context, params ReportParams) (*CustomerAnalytics, error) {
	q := params.values()
	q.Del("branch")
	return Call[CustomerAnalytics](ctx, s.d, http.MethodGet, withQuery("reports/customer-analytics/", q), nil)
}

// ProfitLoss returns revenue, costs and profit for the period
func (s *ReportsService) ProfitLoss(ctx context.Context, params ReportParams) (*ProfitLoss, error) {
	return Call[ProfitLoss](ctx, s.d, http.MethodGet, withQuery("reports/profit-loss/", params.values()), nil)
}
