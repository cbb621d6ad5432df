package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employees_email"`
	Phone         string    `gorm:"type:varchar(20);not null"`
	Position      string    `gorm:"type:varchar(50);not null"`
	Department    string    `gorm:"type:varchar(50);not null"`
	DateOfJoining time.Time `gorm:"type:date;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Employee) TableName() string {
	return "employees"
}
