package service

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/api"
	"github.com/emsuite/ems-cli/pkg/logger"
	"github.com/emsuite/ems-cli/pkg/output"
	"github.com/emsuite/ems-cli/pkg/validate"
)

// LeaveService provides leave request operations
type LeaveService struct{}

// NewLeaveService creates a new leave service
func NewLeaveService() *LeaveService {
	return &LeaveService{}
}

// ListPending displays leave requests awaiting admin action
func (ls *LeaveService) ListPending() error {
	logger.Debug("Listing pending leave requests")

	requests, err := api.GetPendingLeaveRequests()
	if err != nil {
		return fmt.Errorf("failed to load leave requests: %w", err)
	}

	if len(requests) == 0 {
		fmt.Println("No pending requests.")
		return nil
	}

	if output.GetFormat() == output.FormatJSON {
		return output.PrintJSON(requests)
	}

	rows := make([][]string, len(requests))
	for i, req := range requests {
		rows[i] = []string{
			req.ID,
			req.EmployeeName,
			fmt.Sprintf("%s to %s", req.StartDate, req.EndDate),
			req.LeaveType,
		}
	}
	output.PrintTable([]string{"ID", "Employee", "Dates", "Type"}, rows)
	return nil
}

// Approve approves a pending leave request
func (ls *LeaveService) Approve(requestID string) error {
	if err := api.ResolveLeaveRequest(requestID, api.LeaveActionApprove); err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	output.PrintSuccess("Leave request %s approved.", requestID)
	return nil
}

// Deny denies a pending leave request
func (ls *LeaveService) Deny(requestID string) error {
	if err := api.ResolveLeaveRequest(requestID, api.LeaveActionDeny); err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	output.PrintSuccess("Leave request %s denied.", requestID)
	return nil
}

// Request files a leave request for the current employee. Dates must be in
// the future with start before end.
func (ls *LeaveService) Request(leaveType, start, end, reason string) error {
	logger.Debug("Requesting leave", "type", leaveType, "start", start, "end", end)

	start, end, err := validate.DateRange(start, end)
	if err != nil {
		return err
	}

	req := &api.LeaveRequestSubmission{
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
	}

	if err := api.SubmitLeaveRequest(req); err != nil {
		return fmt.Errorf("failed to submit leave request: %w", err)
	}

	output.PrintSuccess("Leave request submitted (%s, %s to %s).", leaveType, start, end)
	return nil
}
