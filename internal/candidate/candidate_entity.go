package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName          string    `gorm:"type:varchar(255);not null"`
	Email             string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_candidates_email"`
	Phone             string    `gorm:"type:varchar(20);not null"`
	Position          string    `gorm:"type:varchar(100);not null"`
	Experience        string    `gorm:"type:varchar(100);not null"`
	ResumeData        []byte    `gorm:"column:resume_data;type:bytea"`
	ResumeContentType string    `gorm:"type:varchar(100)"`
	ResumeFilename    string    `gorm:"type:varchar(255)"`
	Status            string    `gorm:"type:varchar(20);not null;default:'New'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Candidate) TableName() string {
	return "candidates"
}
