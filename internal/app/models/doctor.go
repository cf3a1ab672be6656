package models

type Doctor struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Speciality   string `json:"speciality"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsAvailable  bool   `json:"isAvailable"`
}

// CanBeBooked gates appointment creation against this doctor.
func (d *Doctor) CanBeBooked() bool {
	return d != nil && d.ID != "" && d.IsAvailable
}
