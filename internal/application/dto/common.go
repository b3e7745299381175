package dto

// ErrorResponse cuerpo de error HTTP de la consola.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de acciones sin cuerpo propio.
type MessageResponse struct {
	Message string `json:"message"`
}
