package service

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-cli/pkg/api"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// MessageService provides the unread-message badge behavior
type MessageService struct{}

// NewMessageService creates a new message service
func NewMessageService() *MessageService {
	return &MessageService{}
}

// Unread displays the unread message count
func (ms *MessageService) Unread() error {
	count, err := api.GetUnreadMessageCount()
	if err != nil {
		return fmt.Errorf("failed to check unread messages: %w", err)
	}

	if count == 0 {
		fmt.Println("No unread messages.")
		return nil
	}

	fmt.Printf("%d unread message%s\n", count, pluralize(count))
	return nil
}

// Watch polls the unread count on a fixed interval, printing only changes
func (ms *MessageService) Watch(ctx context.Context) error {
	interval := pollInterval()
	logger.Debug("Watching unread messages", "interval", interval)

	last := -1
	check := func() {
		count, err := api.GetUnreadMessageCount()
		if err != nil {
			logger.Warn("Could not check unread messages", "err", err)
			return
		}
		if count != last {
			fmt.Printf("[%s] %d unread message%s\n", time.Now().Format("15:04:05"), count, pluralize(count))
			last = count
		}
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			check()
		}
	}
}
