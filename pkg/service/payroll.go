package service

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/api"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/emsuite/ems-cli/pkg/output"
)

// PayrollService provides payroll summary operations
type PayrollService struct{}

// NewPayrollService creates a new payroll service
func NewPayrollService() *PayrollService {
	return &PayrollService{}
}

// Summary displays the admin payroll summary
func (ps *PayrollService) Summary() error {
	logger.Debug("Fetching payroll summary")

	summary, err := api.GetBillingSummary()
	if err != nil {
		return fmt.Errorf("failed to load payroll summary: %w", err)
	}

	if output.GetFormat() == output.FormatJSON {
		return output.PrintJSON(summary)
	}

	fmt.Println("\nPayroll Summary")
	fmt.Printf("  Total Payout:      $%.2f\n", summary.TotalPayout)
	fmt.Printf("  Billable Revenue:  $%.2f\n", summary.BillableRevenue)
	fmt.Printf("  Pending Actions:   %d\n\n", summary.PendingActions)
	return nil
}
