package api

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// Admin actions on a pending leave request
const (
	LeaveActionApprove = "approve"
	LeaveActionDeny    = "deny"
)

// GetPendingLeaveRequests retrieves leave requests awaiting admin action
func GetPendingLeaveRequests() ([]LeaveRequest, error) {
	logger.Debug("Fetching pending leave requests")

	var response LeaveRequestListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParam("status", "pending").
		SetResult(&response).
		Get("/api/leave-requests")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch leave requests: %w", err)
	}

	return response.Requests, nil
}

// ResolveLeaveRequest approves or denies a pending leave request
func ResolveLeaveRequest(requestID, action string) error {
	logger.Debug("Resolving leave request", "request_id", requestID, "action", action)

	if action != LeaveActionApprove && action != LeaveActionDeny {
		return fmt.Errorf("unknown leave action %q", action)
	}

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/leave-requests/%s/%s", requestID, action))

	if err := CheckResponse(resp, err); err != nil {
		return fmt.Errorf("failed to %s leave request: %w", action, err)
	}

	return nil
}

// SubmitLeaveRequest files a new leave request for the current employee
func SubmitLeaveRequest(req *LeaveRequestSubmission) error {
	logger.Debug("Submitting leave request", "type", req.LeaveType, "start", req.StartDate, "end", req.EndDate)

	resp, err := client.GetClient().
		R().
		SetBody(req).
		Post("/api/leave-requests")

	if err := CheckResponse(resp, err); err != nil {
		return fmt.Errorf("failed to submit leave request: %w", err)
	}

	return nil
}
