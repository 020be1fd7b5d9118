package dto

// Response envolvente estándar de todos los handlers: {code, message, data}.
// Code refleja el status HTTP de la respuesta; Data se omite en errores.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(code int, message string, data any) Response {
	return Response{Code: code, Message: message, Data: data}
}

// Error construye una respuesta de error (sin data).
func Error(code int, message string) Response {
	return Response{Code: code, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
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
