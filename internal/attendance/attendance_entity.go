package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID             uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status         string       `gorm:"column:status;type:varchar(20);not null;default:'Present'"`
	Task           string       `gorm:"column:task;type:text;not null;default:''"`
	ClockInTime    *time.Time   `gorm:"column:clock_in_time;type:timestamptz"`
	ClockOutTime   *time.Time   `gorm:"column:clock_out_time;type:timestamptz"`
	Notes          string       `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt      time.Time    `gorm:"column:created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef is a read-only projection of the employees table used to
// join employee details into attendance listings.
type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"column:full_name"`
	Email      string    `gorm:"column:email"`
	Phone      string    `gorm:"column:phone"`
	Position   string    `gorm:"column:position"`
	Department string    `gorm:"column:department"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
