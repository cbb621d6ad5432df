package leave

type CreateLeaveRequest struct {
	EmployeeID  string `form:"employeeId" json:"employeeId" binding:"required"`
	LeaveType   string `form:"leaveType" json:"leaveType" binding:"required"`
	StartDate   string `form:"startDate" json:"startDate" binding:"required"`
	EndDate     string `form:"endDate" json:"endDate" binding:"required"`
	Reason      string `form:"reason" json:"reason" binding:"required"`
	Designation string `form:"designation" json:"designation" binding:"required"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type EmployeeInfo struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

// DocumentMeta describes the stored attachment without carrying its
// bytes; the blob itself is served by the document download endpoint.
type DocumentMeta struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	HasDocument bool   `json:"hasDocument"`
}

type LeaveResponse struct {
	ID          string        `json:"id"`
	EmployeeID  string        `json:"employeeId"`
	Employee    *EmployeeInfo `json:"employee,omitempty"`
	LeaveType   string        `json:"leaveType"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Reason      string        `json:"reason"`
	Designation string        `json:"designation"`
	Status      string        `json:"status"`
	AppliedDate string        `json:"appliedDate"`
	TotalDays   int           `json:"totalDays"`
	Document    *DocumentMeta `json:"document,omitempty"`
}

// CalendarEntry is one approved leave's footprint on a single day.
type CalendarEntry struct {
	ID        string        `json:"id"`
	Employee  *EmployeeInfo `json:"employee,omitempty"`
	LeaveType string        `json:"leaveType"`
}

type StatsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
