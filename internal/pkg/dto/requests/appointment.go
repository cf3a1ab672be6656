package requests

// Identifier references another entity by id only, keeping payloads small.
type Identifier struct {
	ID string `json:"id" validate:"required,not_blank"`
}

// CreateAppointment is the exact wire body of an appointment booking.
type CreateAppointment struct {
	Patient     Identifier `json:"patient"`
	Doctor      Identifier `json:"doctor"`
	Date        string     `json:"date" validate:"required,not_blank"`
	Description string     `json:"description" validate:"required,not_blank,max=255"`
}

// AppointmentForm holds what the patient typed, checked before any identifier
// is resolved so an invalid form never reaches the network.
type AppointmentForm struct {
	Date        string `validate:"required,not_blank"`
	Description string `validate:"required,not_blank,max=255"`
}
