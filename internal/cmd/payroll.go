package cmd

import (
	"github.com/emsuite/ems-cli/pkg/service"
	"github.com/spf13/cobra"
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Payroll summaries (admin)",
}

var payrollSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the payroll summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPayrollService().Summary()
	},
}

func init() {
	payrollCmd.AddCommand(payrollSummaryCmd)
}
