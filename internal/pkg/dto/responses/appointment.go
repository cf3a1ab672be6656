package responses

// Reference accepts both `{"id": "..."}` and a fully embedded entity, only the
// id is kept.
type Reference struct {
	ID string `json:"id" validate:"required"`
}

type Appointment struct {
	ID          string    `json:"id" validate:"required"`
	Patient     Reference `json:"patient"`
	Doctor      Reference `json:"doctor"`
	Date        string    `json:"date" validate:"required"`
	Description string    `json:"description"`
}
