package dto

// Result resultado discriminado de una operación contra el backend.
// OK=false con Message representa un rechazo de negocio (stock insuficiente,
// cliente inválido); los fallos de transporte viajan aparte como error de Go.
// Data puede ser nil aun con OK=true (éxito sin payload).
type Result[T any] struct {
	OK      bool
	Data    *T
	Message string
}

// Failure construye un Result fallido con el mensaje dado.
func Failure[T any](message string) Result[T] {
	return Result[T]{OK: false, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
