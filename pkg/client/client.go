package client

import (
	"time"

	"github.com/emsuite/ems-cli/pkg/config"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/go-resty/resty/v2"
)

var httpClient *resty.Client
var csrfToken string
var sessionToken string

// Init initializes the HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "EMS-CLI/0.1.0")

	// Add request/response logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)

		// Every mutating call carries the CSRF token; the backend ignores it on GETs
		if csrfToken != "" {
			req.Header.Set("X-CSRFToken", csrfToken)
		}
		if sessionToken != "" {
			req.Header.Set("Cookie", "session="+sessionToken)
		}

		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode)
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetSession sets the session and CSRF tokens attached to every request
func SetSession(session, csrf string) {
	sessionToken = session
	csrfToken = csrf
}

// ClearSession clears the session and CSRF tokens
func ClearSession() {
	sessionToken = ""
	csrfToken = ""
}

// SetBaseURL overrides the API base URL on the active client
func SetBaseURL(baseURL string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetBaseURL(baseURL)
}
