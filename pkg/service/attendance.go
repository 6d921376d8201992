package service

import (
	"fmt"
	"time"

	"github.com/emsuite/ems-cli/pkg/api"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/emsuite/ems-cli/pkg/output"
)

// AttendanceService provides clock-in/out operations
type AttendanceService struct{}

// NewAttendanceService creates a new attendance service
func NewAttendanceService() *AttendanceService {
	return &AttendanceService{}
}

// ClockIn starts the work day
func (as *AttendanceService) ClockIn(projectID string) error {
	if err := api.ClockIn(projectID); err != nil {
		return fmt.Errorf("error clocking in: %w", err)
	}

	output.PrintSuccess("Clocked in successfully!")
	return as.Today()
}

// ClockOut ends the work day
func (as *AttendanceService) ClockOut(breakMinutes int, notes string) error {
	if err := api.ClockOut(breakMinutes, notes); err != nil {
		return fmt.Errorf("error clocking out: %w", err)
	}

	output.PrintSuccess("Clocked out successfully!")
	return as.Today()
}

// Today displays the current clock state
func (as *AttendanceService) Today() error {
	logger.Debug("Fetching attendance status")

	status, err := api.GetTodayAttendance()
	if err != nil {
		return fmt.Errorf("error updating attendance status: %w", err)
	}

	if output.GetFormat() == output.FormatJSON {
		return output.PrintJSON(status)
	}

	switch {
	case status.ClockedIn && !status.ClockedOut:
		fmt.Printf("Clocked in at %s\n", formatClockTime(status.ClockInTime))
	case status.ClockedOut:
		fmt.Printf("Work completed for today (%g hours)\n", status.TotalHours)
	default:
		fmt.Println("Ready to start work")
	}
	return nil
}

// formatClockTime renders a backend timestamp as a local HH:MM display
func formatClockTime(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return value
}
