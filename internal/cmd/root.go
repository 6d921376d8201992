package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/config"
	"github.com/emsuite/ems-cli/pkg/credentials"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "ems-cli",
	Short: "EMS CLI - Employee management system terminal client",
	Long: `EMS CLI is a terminal client for the EMS employee management
system. Keep your daily work journal, clock in and out, handle
leave requests and watch your notifications from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Save output format to config
		config.SetString("output.format", outputFmt)

		// Attach the stored session to every request
		sess, err := credentials.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
			os.Exit(1)
		}
		if sess != nil {
			client.SetSession(sess.SessionToken, sess.CSRFToken)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// currentEmployeeID returns the employee id from the stored session
func currentEmployeeID() (string, error) {
	sess, err := credentials.Load()
	if err != nil {
		return "", err
	}
	if sess == nil || sess.EmployeeID == "" {
		return "", errors.New("not logged in; run 'ems-cli session login'")
	}
	return sess.EmployeeID, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/emsuite/ems-cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(leaveCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(messagesCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(versionCmd)
}
