package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de éxito sin payload (borrados, accesos, stock).
type MessageResponse struct {
	Message string `json:"message"`
}
