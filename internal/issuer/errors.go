package issuer

import "fmt"

const unknownErrorMessage = "Error desconocido"

var errorMessages = map[string]string{
	"73":    "Monto fuera del rango permitido",
	"88":    "El producto no existe",
	"169":   "El número de orden ya existe",
	"23012": "No se puede cancelar una orden confirmada",
}

type UpstreamError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func newUpstreamError(httpStatus int, code string, upstreamMessage string) *UpstreamError {
	return &UpstreamError{
		HTTPStatus: httpStatus,
		Code:       code,
		Message:    localize(code, upstreamMessage),
	}
}

// localize prefers the local translation, then the issuer's own text.
func localize(code string, upstreamMessage string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	if upstreamMessage != "" {
		return upstreamMessage
	}
	return unknownErrorMessage
}
