package responses

type LoginCheck struct {
	Token string `json:"token" validate:"required"`
}
