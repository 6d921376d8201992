package cmd

import (
	"os/signal"
	"syscall"

	"github.com/emsuite/ems-cli/pkg/service"
	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Message badge",
}

var messagesUnreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Show unread message count",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewMessageService().Unread()
	},
}

var messagesWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the unread count until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return service.NewMessageService().Watch(ctx)
	},
}

func init() {
	messagesCmd.AddCommand(messagesUnreadCmd)
	messagesCmd.AddCommand(messagesWatchCmd)
}
