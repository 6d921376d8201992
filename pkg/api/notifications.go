package api

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// GetNotifications retrieves the notifications for the current employee
func GetNotifications() ([]Notification, error) {
	logger.Debug("Fetching notifications")

	var response NotificationListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/notifications")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	return response.Notifications, nil
}

// MarkNotificationsRead marks every notification as read
func MarkNotificationsRead() error {
	logger.Debug("Marking notifications read")

	resp, err := client.GetClient().
		R().
		Post("/api/notifications/mark-read")

	if err := CheckResponse(resp, err); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
