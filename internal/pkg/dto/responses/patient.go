package responses

type Patient struct {
	ID           string `json:"id" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	FullName     string `json:"fullName"`
	ProfileImage string `json:"profileImage"`
}
