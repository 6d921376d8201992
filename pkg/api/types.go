package api

// Object statuses tracked per journal entry line
const (
	StatusFinished = "finished"
	StatusPending  = "pending"
	StatusError    = "error"
)

// TaskTypes is the fixed set of journal task types
var TaskTypes = []string{"coding", "testing", "review", "meeting"}

// StatusOptions is the fixed set of per-object statuses
var StatusOptions = []string{StatusFinished, StatusPending, StatusError}

// ObjectStatus pairs an object id with its completion status. Pairing with
// JournalEntry.ObjectIDs is positional: entry i describes ObjectIDs[i].
type ObjectStatus struct {
	ObjectID string `json:"objectId"`
	Status   string `json:"status"`
}

// JournalEntry is a daily work-journal entry. One entry exists per
// (employee, project, date); the backend upserts on that key.
type JournalEntry struct {
	Date            string         `json:"date"`
	EmployeeID      string         `json:"employeeId"`
	ProjectID       string         `json:"projectId"`
	ObjectIDs       []string       `json:"objectIds"`
	TaskType        string         `json:"taskType"`
	HoursSpent      float64        `json:"hoursSpent"`
	StatusPerObject []ObjectStatus `json:"statusPerObject"`
	Comments        string         `json:"comments,omitempty"`
}

// Employee is a directory entry used for display-name resolution
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is a directory entry used for selection and display-name resolution
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LeaveRequest is a pending leave request as listed for admins
type LeaveRequest struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	LeaveType    string `json:"leaveType"`
}

// LeaveRequestSubmission is the employee-side leave request payload
type LeaveRequestSubmission struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason,omitempty"`
}

type LeaveRequestListResponse struct {
	Requests []LeaveRequest `json:"requests"`
}

// BillingSummary is the admin payroll summary card payload
type BillingSummary struct {
	TotalPayout     float64 `json:"totalPayout"`
	BillableRevenue float64 `json:"billableRevenue"`
	PendingActions  int     `json:"pendingActions"`
}

// Notification is a single item behind the notification badge
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}

// AttendanceStatus is today's clock state for the current employee
type AttendanceStatus struct {
	ClockedIn   bool    `json:"clocked_in"`
	ClockedOut  bool    `json:"clocked_out"`
	ClockInTime string  `json:"clock_in_time,omitempty"`
	TotalHours  float64 `json:"total_hours,omitempty"`
}

// ActionResponse is the success/message envelope used by the attendance
// endpoints. Success=false with a 200 still means the action failed.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the structured error body some endpoints return
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
