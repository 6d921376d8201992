package api

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// GetProjects retrieves the project directory
func GetProjects() ([]Project, error) {
	logger.Debug("Fetching projects")

	var projects []Project

	resp, err := client.GetClient().
		R().
		SetResult(&projects).
		Get("/api/projects")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	return projects, nil
}

// GetEmployees retrieves the employee directory
func GetEmployees() ([]Employee, error) {
	logger.Debug("Fetching employees")

	var employees []Employee

	resp, err := client.GetClient().
		R().
		SetResult(&employees).
		Get("/api/employees")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	return employees, nil
}
