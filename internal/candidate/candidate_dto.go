package candidate

type CreateCandidateRequest struct {
	FullName   string `form:"fullName" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Phone      string `form:"phone" binding:"required"`
	Position   string `form:"position" binding:"required"`
	Experience string `form:"experience" binding:"required"`
}

type UpdateCandidateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CandidateResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Experience string `json:"experience"`
	Status     string `json:"status"`
	Resume     *BlobMeta `json:"resume,omitempty"`
}

// BlobMeta describes a stored file without carrying its bytes.
type BlobMeta struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	HasFile     bool   `json:"hasFile"`
}
