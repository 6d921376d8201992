package cmd

import (
	"github.com/emsuite/ems-cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	attendanceProject string
	attendanceBreak   int
	attendanceNotes   string
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Clock in and out",
}

var attendanceInCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAttendanceService().ClockIn(attendanceProject)
	},
}

var attendanceOutCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAttendanceService().ClockOut(attendanceBreak, attendanceNotes)
	},
}

var attendanceTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's clock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAttendanceService().Today()
	},
}

func init() {
	attendanceInCmd.Flags().StringVar(&attendanceProject, "project", "", "Project ID (optional)")
	attendanceOutCmd.Flags().IntVar(&attendanceBreak, "break", 0, "Break duration in minutes")
	attendanceOutCmd.Flags().StringVar(&attendanceNotes, "notes", "", "Notes (optional)")

	attendanceCmd.AddCommand(attendanceInCmd)
	attendanceCmd.AddCommand(attendanceOutCmd)
	attendanceCmd.AddCommand(attendanceTodayCmd)
}
