package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ActionResponse resultado uniforme de una acción sobre el store.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
