package service

import (
	"errors"
	"fmt"

	"github.com/emsuite/ems-cli/pkg/credentials"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/emsuite/ems-cli/pkg/output"
	"github.com/emsuite/ems-cli/pkg/prompter"
)

// SessionService manages the stored backend session
type SessionService struct{}

// NewSessionService creates a new session service
func NewSessionService() *SessionService {
	return &SessionService{}
}

// Login prompts for and stores the employee session. The session token is the
// backend login cookie value; the CSRF token is what the web app reads from
// its meta tag.
func (ss *SessionService) Login(employeeID, employeeName string) error {
	var err error
	if employeeID == "" {
		employeeID, err = prompter.PromptString("Employee ID: ")
		if err != nil {
			return err
		}
	}
	if employeeID == "" {
		return errors.New("employee ID is required")
	}

	if employeeName == "" {
		employeeName, err = prompter.PromptString("Employee name: ")
		if err != nil {
			return err
		}
	}

	sessionToken, err := prompter.PromptSecret("Session token: ")
	if err != nil {
		return err
	}
	if sessionToken == "" {
		return errors.New("session token is required")
	}

	csrfToken, err := prompter.PromptSecret("CSRF token: ")
	if err != nil {
		return err
	}

	sess := &credentials.Session{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		SessionToken: sessionToken,
		CSRFToken:    csrfToken,
	}

	if err := credentials.Save(sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session stored", "employee_id", employeeID)
	output.PrintSuccess("Session stored for %s.", employeeID)
	return nil
}

// Status displays the stored session
func (ss *SessionService) Status() error {
	sess, err := credentials.Load()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if sess == nil {
		fmt.Println("Not logged in. Run 'ems-cli session login'.")
		return nil
	}

	fmt.Printf("Logged in as %s", sess.EmployeeID)
	if sess.EmployeeName != "" {
		fmt.Printf(" (%s)", sess.EmployeeName)
	}
	fmt.Println()
	return nil
}

// Logout deletes the stored session
func (ss *SessionService) Logout() error {
	if err := credentials.Delete(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	output.PrintSuccess("Session deleted.")
	return nil
}
