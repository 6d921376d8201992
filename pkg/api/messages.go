package api

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// GetUnreadMessageCount retrieves the unread message count for the badge
func GetUnreadMessageCount() (int, error) {
	logger.Debug("Fetching unread message count")

	var response struct {
		Count int `json:"count"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/messages/unread-count")

	if err := CheckResponse(resp, err); err != nil {
		return 0, fmt.Errorf("failed to fetch unread count: %w", err)
	}

	return response.Count, nil
}
