package service

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-cli/pkg/api"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/emsuite/ems-cli/pkg/output"
)

// NotificationService provides the notification badge behavior: a cached
// notification list, unread counting and local mark-read.
type NotificationService struct {
	notifications []api.Notification
	loaded        bool
}

// NewNotificationService creates a new notification service
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (ns *NotificationService) refresh() error {
	notifications, err := api.GetNotifications()
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	ns.notifications = notifications
	ns.loaded = true
	return nil
}

// UnreadCount returns the unread count, fetching the list only if it has not
// been loaded yet. After MarkAllRead the count is derived from the local
// cache without another fetch.
func (ns *NotificationService) UnreadCount() (int, error) {
	if !ns.loaded {
		if err := ns.refresh(); err != nil {
			return 0, err
		}
	}

	count := 0
	for _, n := range ns.notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// List displays the most recent notifications, newest first
func (ns *NotificationService) List() error {
	logger.Debug("Listing notifications")

	if err := ns.refresh(); err != nil {
		return err
	}

	if len(ns.notifications) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	if output.GetFormat() == output.FormatJSON {
		return output.PrintJSON(ns.lastFive())
	}

	unread, _ := ns.UnreadCount()
	fmt.Printf("\nNotifications (%d unread)\n\n", unread)
	for _, n := range ns.lastFive() {
		marker := "  "
		if !n.Read {
			marker = "* "
		}
		fmt.Printf("%s%s\n", marker, n.Title)
		fmt.Printf("    %s\n", n.Message)
	}
	fmt.Println()
	return nil
}

// lastFive mirrors the badge dropdown: the last five items, newest first
func (ns *NotificationService) lastFive() []api.Notification {
	n := len(ns.notifications)
	start := n - 5
	if start < 0 {
		start = 0
	}
	recent := make([]api.Notification, 0, n-start)
	for i := n - 1; i >= start; i-- {
		recent = append(recent, ns.notifications[i])
	}
	return recent
}

// CountUnread displays the unread notification count
func (ns *NotificationService) CountUnread() error {
	count, err := ns.UnreadCount()
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Println("No unread notifications.")
		return nil
	}

	fmt.Printf("%d unread notification%s\n", count, pluralize(count))
	return nil
}

// MarkAllRead marks every notification as read on the backend and flips the
// cached items locally, so subsequent counts need no refetch.
func (ns *NotificationService) MarkAllRead() error {
	logger.Debug("Marking all notifications read")

	if err := api.MarkNotificationsRead(); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	for i := range ns.notifications {
		ns.notifications[i].Read = true
	}

	output.PrintSuccess("All notifications marked as read.")
	return nil
}

// Watch re-fetches the unread count on a fixed interval until ctx is
// cancelled. No backoff and no deduplication of overlapping polls, matching
// the badge's 30-second timer.
func (ns *NotificationService) Watch(ctx context.Context) error {
	interval := pollInterval()
	logger.Debug("Watching notifications", "interval", interval)

	if err := ns.poll(); err != nil {
		output.PrintWarning("%v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := ns.poll(); err != nil {
				// Keep polling; a failed fetch leaves the prior state intact
				logger.Warn("Notification poll failed", "err", err)
			}
		}
	}
}

func (ns *NotificationService) poll() error {
	if err := ns.refresh(); err != nil {
		return err
	}
	count, _ := ns.UnreadCount()
	fmt.Printf("[%s] %d unread notification%s\n", time.Now().Format("15:04:05"), count, pluralize(count))
	return nil
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
