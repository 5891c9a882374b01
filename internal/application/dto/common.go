package dto

// ErrorResponse cuerpo de error HTTP.
// Message nunca incluye el detalle interno del error: los 500 se responden
// con un mensaje genérico y el detalle queda solo en el log.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
