package leave

import (
	"time"

	"github.com/google/uuid"
)

type Leave struct {
	ID                  uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID          uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;index:idx_leaves_employee"`
	LeaveType           string       `gorm:"column:leave_type;type:varchar(30);not null"`
	StartDate           time.Time    `gorm:"column:start_date;type:date;not null"`
	EndDate             time.Time    `gorm:"column:end_date;type:date;not null"`
	Reason              string       `gorm:"column:reason;type:text;not null"`
	Designation         string       `gorm:"column:designation;type:varchar(100);not null;default:''"`
	DocumentData        []byte       `gorm:"column:document_data;type:bytea"`
	DocumentContentType string       `gorm:"column:document_content_type;type:varchar(100)"`
	DocumentFilename    string       `gorm:"column:document_filename;type:varchar(255)"`
	Status              string       `gorm:"column:status;type:varchar(20);not null;default:'Pending'"`
	AppliedDate         time.Time    `gorm:"column:applied_date;type:timestamptz;not null"`
	TotalDays           int          `gorm:"column:total_days;not null"`
	CreatedAt           time.Time    `gorm:"column:created_at"`
	UpdatedAt           time.Time    `gorm:"column:updated_at"`
	Employee            *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

// EmployeeRef is a read-only projection of the employees table used to
// join employee details into leave listings and the calendar view.
type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"column:full_name"`
	Email      string    `gorm:"column:email"`
	Position   string    `gorm:"column:position"`
	Department string    `gorm:"column:department"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
