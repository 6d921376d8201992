package cmd

import (
	"os/signal"
	"syscall"

	"github.com/emsuite/ems-cli/pkg/service"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Notification badge",
	Long:  "View notifications and keep an eye on the unread count.",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewNotificationService().List()
	},
}

var notificationsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show unread notification count",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewNotificationService().CountUnread()
	},
}

var notificationsMarkReadCmd = &cobra.Command{
	Use:   "mark-read",
	Short: "Mark all notifications as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewNotificationService().MarkAllRead()
	},
}

var notificationsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the unread count until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return service.NewNotificationService().Watch(ctx)
	},
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsCountCmd)
	notificationsCmd.AddCommand(notificationsMarkReadCmd)
	notificationsCmd.AddCommand(notificationsWatchCmd)
}
