package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/emsuite/ems-cli/pkg/api"
	"github.com/emsuite/ems-cli/pkg/journal"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/emsuite/ems-cli/pkg/notify"
	"github.com/emsuite/ems-cli/pkg/output"
	"github.com/emsuite/ems-cli/pkg/prompter"
)

// EntryInput carries the journal form fields supplied via flags. Empty fields
// are prompted for interactively.
type EntryInput struct {
	TaskType  string
	Hours     string
	ObjectIDs string
	Statuses  []string // "index=status" pairs, 1-based
	Comments  string
}

// JournalService drives the daily journal workflow
type JournalService struct {
	employeeID string
	store      *journal.Store
	controller *journal.Controller
}

// NewJournalService creates a journal service for the current employee
func NewJournalService(employeeID string) *JournalService {
	gateway := journal.APIGateway{}
	return &JournalService{
		employeeID: employeeID,
		store:      journal.NewStore(gateway),
		controller: journal.NewController(gateway, &errorNotifier{sender: notify.SenderFromConfig()}),
	}
}

// ShowEntry displays today's entry for a project, if any
func (js *JournalService) ShowEntry(projectID string) error {
	logger.Debug("Showing journal entry", "project_id", projectID)

	entry, err := api.FetchJournalEntry(js.employeeID, projectID, js.store.Today())
	if err != nil {
		return fmt.Errorf("failed to fetch journal entry: %w", err)
	}

	if entry == nil {
		fmt.Println("No journal entry for today.")
		return nil
	}

	if output.GetFormat() == output.FormatJSON {
		return output.PrintJSON(entry)
	}

	js.displayEntry(entry)
	return nil
}

// SubmitEntry loads today's draft for the project, fills it from flags or
// prompts, and submits it. Manual mode skips the already-submitted guard.
func (js *JournalService) SubmitEntry(projectID string, input EntryInput, manual bool) error {
	logger.Debug("Submitting journal entry", "project_id", projectID, "manual", manual)

	projectID, err := js.resolveProject(projectID)
	if err != nil {
		return err
	}

	draft, err := js.store.SelectProject(js.employeeID, projectID)
	if err != nil {
		return err
	}

	if draft.Submitted {
		if !manual {
			output.PrintWarning("An entry for today already exists. Use 'journal manual' to add a correction.")
			return nil
		}
		output.PrintInfo("Editing today's existing entry as a manual correction.")
	}

	if err := js.fillDraft(draft, input); err != nil {
		return err
	}

	if manual {
		_, err = js.controller.SubmitManual(draft)
	} else {
		_, err = js.controller.Submit(draft)
	}
	if err != nil {
		if journal.IsValidationError(err) {
			return fmt.Errorf("all fields except comments are required: %w", err)
		}
		return err
	}

	if manual {
		output.PrintSuccess("Manual entry added successfully.")
	} else {
		output.PrintSuccess("Entry saved.")
	}
	return nil
}

// resolveProject returns the flag value or prompts a selection from the
// project directory.
func (js *JournalService) resolveProject(projectID string) (string, error) {
	if projectID != "" {
		return projectID, nil
	}

	projects, err := api.GetProjects()
	if err != nil {
		return "", fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return "", errors.New("no projects available")
	}

	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}

	idx, err := prompter.PromptSelect("Select project:", names)
	if err != nil {
		return "", err
	}
	return projects[idx].ID, nil
}

func (js *JournalService) fillDraft(draft *journal.Draft, input EntryInput) error {
	// Task type
	if input.TaskType != "" {
		draft.TaskType = input.TaskType
	} else if draft.TaskType == "" {
		idx, err := prompter.PromptSelect("Task type:", api.TaskTypes)
		if err != nil {
			return err
		}
		draft.TaskType = api.TaskTypes[idx]
	}

	// Hours
	if input.Hours != "" {
		draft.HoursInput = input.Hours
	} else if draft.HoursInput == "" {
		hours, err := prompter.PromptString("Hours spent: ")
		if err != nil {
			return err
		}
		draft.HoursInput = hours
	}

	// Object ids (reconciles status rows on every edit)
	if input.ObjectIDs != "" {
		draft.SetObjectIDs(input.ObjectIDs)
	} else if draft.ObjectIDsInput == "" {
		ids, err := prompter.PromptString("Object IDs (comma separated): ")
		if err != nil {
			return err
		}
		draft.SetObjectIDs(ids)
	}

	// Per-object statuses
	if len(input.Statuses) > 0 {
		if err := applyStatusFlags(draft, input.Statuses); err != nil {
			return err
		}
	} else if len(draft.StatusPerObject) > 0 {
		edit, err := prompter.PromptConfirm("Edit per-object statuses?")
		if err != nil {
			return err
		}
		if edit {
			for i, row := range draft.StatusPerObject {
				idx, err := prompter.PromptSelect(
					fmt.Sprintf("Status for %s (currently %s):", row.ObjectID, row.Status),
					api.StatusOptions)
				if err != nil {
					return err
				}
				if err := draft.SetStatus(i, api.StatusOptions[idx]); err != nil {
					return err
				}
			}
		}
	}

	// Comments (optional, never validated)
	if input.Comments != "" {
		draft.Comments = input.Comments
	}

	return nil
}

// applyStatusFlags applies --status index=value pairs (1-based indexes)
func applyStatusFlags(draft *journal.Draft, pairs []string) error {
	for _, pair := range pairs {
		idxStr, status, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid status flag %q (expected index=status)", pair)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil {
			return fmt.Errorf("invalid status index %q", idxStr)
		}
		if err := draft.SetStatus(idx-1, strings.TrimSpace(status)); err != nil {
			return err
		}
	}
	return nil
}

func (js *JournalService) displayEntry(entry *api.JournalEntry) {
	fmt.Printf("\nJournal entry for %s\n\n", entry.Date)
	fmt.Printf("  Project:    %s\n", entry.ProjectID)
	fmt.Printf("  Task type:  %s\n", entry.TaskType)
	fmt.Printf("  Hours:      %g\n", entry.HoursSpent)
	if entry.Comments != "" {
		fmt.Printf("  Comments:   %s\n", entry.Comments)
	}

	rows := make([][]string, len(entry.StatusPerObject))
	for i, row := range entry.StatusPerObject {
		rows[i] = []string{row.ObjectID, row.Status}
	}
	fmt.Println()
	output.PrintTable([]string{"Object", "Status"}, rows)
	fmt.Println()
}

// errorNotifier adapts the notify dispatcher to the submission controller.
// The directories it resolves names from live on the backend, so everything
// runs off the save path.
type errorNotifier struct {
	sender notify.Sender
}

func (n *errorNotifier) NotifyError(entry *api.JournalEntry) {
	go func() {
		employees, err := api.GetEmployees()
		if err != nil {
			logger.Warn("Employee directory unavailable, using raw ids", "err", err)
		}
		projects, err := api.GetProjects()
		if err != nil {
			logger.Warn("Project directory unavailable, using raw ids", "err", err)
		}
		notify.NewDispatcher(n.sender, employees, projects).NotifyError(entry)
	}()
}
