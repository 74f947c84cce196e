package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/delivery/http/dto/stats"
	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/shopspring/decimal"
)

// HTTPStatsHandler is the remote StatisticsSource: it serves the same
// aggregate reads as the direct database repository but over the stats
// API, for collaborators that cannot (or should not) hold a database
// connection. The window is passed as whole hours.
type HTTPStatsHandler struct {
	Address string
	Client  *http.Client
}

func NewHTTPStatsHandler(address string) (*HTTPStatsHandler, error) {
	return &HTTPStatsHandler{
		Address: address,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}, nil
}

func (h *HTTPStatsHandler) TotalRevenue(ctx context.Context, window time.Duration) (decimal.Decimal, error) {
	var response stats.TotalRevenueResponse
	url := fmt.Sprintf("%s/api/revenue/24h?hours=%d", h.Address, windowHours(window))
	if err := h.getJSON(ctx, url, &response); err != nil {
		return decimal.Decimal{}, err
	}
	return response.TotalRevenueUSD, nil
}

func (h *HTTPStatsHandler) RevenueByCountry(ctx context.Context, window time.Duration) ([]domain.RevenueBreakdown, error) {
	return h.revenueBy(ctx, "by_country", window)
}

func (h *HTTPStatsHandler) RevenueByCurrency(ctx context.Context, window time.Duration) ([]domain.RevenueBreakdown, error) {
	return h.revenueBy(ctx, "by_currency", window)
}

func (h *HTTPStatsHandler) RevenueByUser(ctx context.Context, window time.Duration) ([]domain.RevenueBreakdown, error) {
	return h.revenueBy(ctx, "by_user", window)
}

func (h *HTTPStatsHandler) revenueBy(ctx context.Context, dimension string, window time.Duration) ([]domain.RevenueBreakdown, error) {
	var response []stats.RevenueBreakdownResponse
	url := fmt.Sprintf("%s/api/revenue/%s?hours=%d", h.Address, dimension, windowHours(window))
	if err := h.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}

	breakdown := make([]domain.RevenueBreakdown, 0, len(response))
	for _, entry := range response {
		breakdown = append(breakdown, domain.RevenueBreakdown{
			Key:        entry.Key,
			RevenueUSD: entry.RevenueUSD,
		})
	}
	return breakdown, nil
}

func (h *HTTPStatsHandler) HourlyActivity(ctx context.Context, window time.Duration) ([]domain.HourlyActivity, error) {
	var response []stats.HourlyActivityResponse
	url := fmt.Sprintf("%s/api/transactions/hourly?hours=%d", h.Address, windowHours(window))
	if err := h.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}

	activity := make([]domain.HourlyActivity, 0, len(response))
	for _, entry := range response {
		activity = append(activity, domain.HourlyActivity{
			Hour:             entry.Hour,
			TransactionCount: entry.TransactionCount,
			RevenueUSD:       entry.RevenueUSD,
		})
	}
	return activity, nil
}

func (h *HTTPStatsHandler) Summary(ctx context.Context, window time.Duration) (*domain.SummaryStats, error) {
	var response stats.SummaryResponse
	url := fmt.Sprintf("%s/api/summary?hours=%d", h.Address, windowHours(window))
	if err := h.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}
	return &domain.SummaryStats{
		TransactionCount:  response.TransactionCount,
		TotalRevenueUSD:   response.TotalRevenueUSD,
		DistinctUsers:     response.DistinctUsers,
		DistinctCountries: response.DistinctCountries,
	}, nil
}

func (h *HTTPStatsHandler) getJSON(ctx context.Context, url string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := h.Client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return json.Unmarshal(responseBodyBytes, out)
	}

	var errorResponse stats.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return fmt.Errorf("stats api returned status %d", response.StatusCode)
	}
	return errors.New(errorResponse.Error)
}

func windowHours(window time.Duration) int {
	hours := int(window / time.Hour)
	if hours < 1 {
		hours = 1
	}
	return hours
}

var _ domain.StatisticsSource = (*HTTPStatsHandler)(nil)
