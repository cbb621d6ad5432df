package candidate

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, cand *Candidate) error
	FindAll(ctx context.Context) ([]Candidate, error)
	FindByID(ctx context.Context, id string) (*Candidate, error)
	FindResume(ctx context.Context, id string) (*Candidate, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cand *Candidate) error {
	return r.db.WithContext(ctx).Create(cand).Error
}

// FindAll leaves resume_data out of the projection; listings never
// need the bytes.
func (r *repository) FindAll(ctx context.Context) ([]Candidate, error) {
	var cands []Candidate
	err := r.db.WithContext(ctx).
		Omit("resume_data").
		Order("created_at DESC").
		Find(&cands).Error
	return cands, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Candidate, error) {
	var cand Candidate
	err := r.db.WithContext(ctx).
		Omit("resume_data").
		First(&cand, "id = ?", id).Error
	return &cand, err
}

func (r *repository) FindResume(ctx context.Context, id string) (*Candidate, error) {
	var cand Candidate
	err := r.db.WithContext(ctx).
		Select("id", "resume_data", "resume_content_type", "resume_filename").
		First(&cand, "id = ?", id).Error
	return &cand, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Candidate{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Candidate{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
