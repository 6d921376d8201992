package cmd

import (
	"github.com/emsuite/ems-cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	sessionEmployeeID string
	sessionName       string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the stored backend session",
}

var sessionLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the employee session and CSRF tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewSessionService().Login(sessionEmployeeID, sessionName)
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewSessionService().Status()
	},
}

var sessionLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewSessionService().Logout()
	},
}

func init() {
	sessionLoginCmd.Flags().StringVar(&sessionEmployeeID, "employee", "", "Employee ID")
	sessionLoginCmd.Flags().StringVar(&sessionName, "name", "", "Employee display name")

	sessionCmd.AddCommand(sessionLoginCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionLogoutCmd)
}
