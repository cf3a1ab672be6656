package responses

type Doctor struct {
	ID           string `json:"id" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
	Speciality   string `json:"speciality"`
	ProfileImage string `json:"profileImage"`
	IsAvailable  bool   `json:"isAvailable"`
}
