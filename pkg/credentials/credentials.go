package credentials

import (
	"encoding/json"
	"os"

	"github.com/emsuite/ems-cli/pkg/config"
)

// Session holds the stored backend session for the current employee. The web
// client reads the CSRF token from a page meta tag and rides the login cookie;
// the CLI keeps both in a file under the config dir instead.
type Session struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	SessionToken string `json:"session_token"`
	CSRFToken    string `json:"csrf_token"`
}

// Load loads the session from disk
func Load() (*Session, error) {
	path := config.GetSessionPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No session stored yet
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Save saves the session to disk
func Save(sess *Session) error {
	path := config.GetSessionPath()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	return os.WriteFile(path, data, 0600)
}

// Delete deletes the session from disk. Deleting an absent session is not an
// error, so logout is idempotent.
func Delete() error {
	err := os.Remove(config.GetSessionPath())
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsValid checks that the session carries enough to talk to the backend
func (s *Session) IsValid() bool {
	return s.EmployeeID != "" && s.SessionToken != ""
}
