package api

import (
	"errors"
	"fmt"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// ClockIn starts the work day, optionally against a project
func ClockIn(projectID string) error {
	logger.Debug("Clocking in", "project_id", projectID)

	body := map[string]string{}
	if projectID != "" {
		body["project_id"] = projectID
	}

	var response ActionResponse

	resp, err := client.GetClient().
		R().
		SetBody(body).
		SetResult(&response).
		Post("/api/attendance/clock-in")

	if err := CheckResponse(resp, err); err != nil {
		return fmt.Errorf("failed to clock in: %w", err)
	}

	// The attendance endpoints report failures inside a 200 envelope
	if !response.Success {
		if response.Message != "" {
			return errors.New(response.Message)
		}
		return errors.New("failed to clock in")
	}

	return nil
}

// ClockOut ends the work day, recording break time and notes
func ClockOut(breakMinutes int, notes string) error {
	logger.Debug("Clocking out", "break_minutes", breakMinutes)

	body := map[string]interface{}{
		"break_duration": breakMinutes,
		"notes":          notes,
	}

	var response ActionResponse

	resp, err := client.GetClient().
		R().
		SetBody(body).
		SetResult(&response).
		Post("/api/attendance/clock-out")

	if err := CheckResponse(resp, err); err != nil {
		return fmt.Errorf("failed to clock out: %w", err)
	}

	if !response.Success {
		if response.Message != "" {
			return errors.New(response.Message)
		}
		return errors.New("failed to clock out")
	}

	return nil
}

// GetTodayAttendance retrieves today's clock state
func GetTodayAttendance() (*AttendanceStatus, error) {
	logger.Debug("Fetching today's attendance")

	var status AttendanceStatus

	resp, err := client.GetClient().
		R().
		SetResult(&status).
		Get("/api/attendance/today")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}

	return &status, nil
}
