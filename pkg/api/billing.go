package api

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// GetBillingSummary retrieves the admin payroll summary
func GetBillingSummary() (*BillingSummary, error) {
	logger.Debug("Fetching billing summary")

	var response struct {
		Summary BillingSummary `json:"summary"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/billing/summary")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch billing summary: %w", err)
	}

	return &response.Summary, nil
}
