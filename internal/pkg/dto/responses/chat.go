package responses

type Chat struct {
	Message string `json:"message"`
}
