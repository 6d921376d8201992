package cmd

import (
	"github.com/emsuite/ems-cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	leaveType   string
	leaveFrom   string
	leaveTo     string
	leaveReason string
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Leave requests",
	Long:  "File leave requests and handle pending ones as an admin.",
}

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending leave requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewLeaveService().ListPending()
	},
}

var leaveApproveCmd = &cobra.Command{
	Use:   "approve <request-id>",
	Short: "Approve a pending leave request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewLeaveService().Approve(args[0])
	},
}

var leaveDenyCmd = &cobra.Command{
	Use:   "deny <request-id>",
	Short: "Deny a pending leave request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewLeaveService().Deny(args[0])
	},
}

var leaveRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "File a leave request",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewLeaveService().Request(leaveType, leaveFrom, leaveTo, leaveReason)
	},
}

func init() {
	leaveRequestCmd.Flags().StringVar(&leaveType, "type", "", "Leave type (vacation, sick, ...)")
	leaveRequestCmd.Flags().StringVar(&leaveFrom, "from", "", "Start date (YYYY-MM-DD)")
	leaveRequestCmd.Flags().StringVar(&leaveTo, "to", "", "End date (YYYY-MM-DD)")
	leaveRequestCmd.Flags().StringVar(&leaveReason, "reason", "", "Reason (optional)")
	leaveRequestCmd.MarkFlagRequired("type")
	leaveRequestCmd.MarkFlagRequired("from")
	leaveRequestCmd.MarkFlagRequired("to")

	leaveCmd.AddCommand(leaveListCmd)
	leaveCmd.AddCommand(leaveApproveCmd)
	leaveCmd.AddCommand(leaveDenyCmd)
	leaveCmd.AddCommand(leaveRequestCmd)
}
