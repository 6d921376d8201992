package cmd

import (
	"github.com/emsuite/ems-cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	journalProject  string
	journalTaskType string
	journalHours    string
	journalObjects  string
	journalStatuses []string
	journalComments string
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Daily work journal",
	Long:  "Keep the daily work journal: one entry per project per day.",
}

var journalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's entry for a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, err := currentEmployeeID()
		if err != nil {
			return err
		}
		return service.NewJournalService(employeeID).ShowEntry(journalProject)
	},
}

var journalSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit today's journal entry",
	Long: `Submit today's journal entry for a project. Fields not given as
flags are prompted for. Once an entry for today exists, plain submission is
refused; use 'journal manual' for corrections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, err := currentEmployeeID()
		if err != nil {
			return err
		}
		return service.NewJournalService(employeeID).SubmitEntry(journalProject, journalInput(), false)
	},
}

var journalManualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Add a manual journal entry",
	Long:  "Add a manual entry for today, even when one was already submitted. Intended for corrections and backfill.",
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, err := currentEmployeeID()
		if err != nil {
			return err
		}
		return service.NewJournalService(employeeID).SubmitEntry(journalProject, journalInput(), true)
	},
}

func journalInput() service.EntryInput {
	return service.EntryInput{
		TaskType:  journalTaskType,
		Hours:     journalHours,
		ObjectIDs: journalObjects,
		Statuses:  journalStatuses,
		Comments:  journalComments,
	}
}

func init() {
	journalShowCmd.Flags().StringVar(&journalProject, "project", "", "Project ID")
	journalShowCmd.MarkFlagRequired("project")

	for _, c := range []*cobra.Command{journalSubmitCmd, journalManualCmd} {
		c.Flags().StringVar(&journalProject, "project", "", "Project ID (prompted when omitted)")
		c.Flags().StringVar(&journalTaskType, "task-type", "", "Task type: coding, testing, review, meeting")
		c.Flags().StringVar(&journalHours, "hours", "", "Hours spent")
		c.Flags().StringVar(&journalObjects, "objects", "", "Object IDs, comma separated")
		c.Flags().StringArrayVar(&journalStatuses, "status", nil, "Set object status by position, e.g. --status 2=error")
		c.Flags().StringVar(&journalComments, "comments", "", "Comments (optional)")
	}

	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalSubmitCmd)
	journalCmd.AddCommand(journalManualCmd)
}
