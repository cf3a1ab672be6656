package models

// Patient is the signed-in user of the app. The ID is assigned by the backend
// and never fabricated client side.
type Patient struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	ProfileImage string `json:"profileImage,omitempty"`
	// Password is write-only and never leaves the process in a response.
	Password string `json:"-"`
}

// HasProfileImage reports whether the backend stored an avatar for the patient.
func (p *Patient) HasProfileImage() bool {
	return p != nil && p.ProfileImage != ""
}
