package employee

type CreateEmployeeRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
}

// UpdateEmployeeRequest carries partial updates; nil fields keep the
// stored value and provided fields are re-validated.
type UpdateEmployeeRequest struct {
	FullName      *string `json:"fullName"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Position      *string `json:"position"`
	Department    *string `json:"department"`
	DateOfJoining *string `json:"dateOfJoining"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
}
