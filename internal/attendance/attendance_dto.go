package attendance

import "time"

type UpsertAttendanceRequest struct {
	EmployeeID   string     `json:"employeeId" binding:"required"`
	Date         string     `json:"date" binding:"required"`
	Status       string     `json:"status"`
	Task         *string    `json:"task"`
	ClockInTime  *time.Time `json:"clockInTime"`
	ClockOutTime *time.Time `json:"clockOutTime"`
	Notes        *string    `json:"notes"`
}

type UpdateAttendanceRequest struct {
	Status       string     `json:"status"`
	Task         *string    `json:"task"`
	ClockInTime  *time.Time `json:"clockInTime"`
	ClockOutTime *time.Time `json:"clockOutTime"`
	Notes        *string    `json:"notes"`
}

// ListQuery combines the optional attendance filters. When both a
// single date and a range are supplied the range wins.
type ListQuery struct {
	Date       string
	StartDate  string
	EndDate    string
	Status     string
	EmployeeID string
}

type StatsQuery struct {
	StartDate  string
	EndDate    string
	EmployeeID string
}

type EmployeeInfo struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

type AttendanceResponse struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employeeId"`
	Employee     *EmployeeInfo `json:"employee,omitempty"`
	Date         string        `json:"date"`
	Status       string        `json:"status"`
	Task         string        `json:"task"`
	ClockInTime  *string       `json:"clockInTime,omitempty"`
	ClockOutTime *string       `json:"clockOutTime,omitempty"`
	Notes        string        `json:"notes"`
}

// DayEntry pairs an employee with their record for one day. When no
// record is stored the attendance carries the synthesized default:
// status Present and an empty id.
type DayEntry struct {
	Employee   EmployeeInfo       `json:"employee"`
	Attendance AttendanceResponse `json:"attendance"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type StatsResponse struct {
	Stats          []StatusCount `json:"stats"`
	TotalEmployees int64         `json:"totalEmployees"`
}
