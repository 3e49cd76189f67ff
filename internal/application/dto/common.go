package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse cuerpo de confirmación simple (ej. cambio de contraseña).
type SuccessResponse struct {
	Success bool `json:"success"`
}
