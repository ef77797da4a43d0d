package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMissingID se devuelve al intentar editar un registro sin identificador.
	ErrMissingID = errors.New("falta el identificador del registro")

	// ErrEstadoFinal se devuelve al intentar transicionar una mensualidad
	// pagada o anulada; ambos estados son terminales.
	ErrEstadoFinal = errors.New("la mensualidad está en un estado final")

	// ErrNoEncontrado marca una fila inexistente en operaciones que la exigen
	// (update, delete). Las lecturas simples devuelven (nil, nil).
	ErrNoEncontrado = errors.New("registro no encontrado")
)

// ValidationError lleva el mapa campo -> mensaje producido localmente antes
// de cualquier llamada a la red.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "datos inválidos"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "datos inválidos: " + strings.Join(parts, "; ")
}

// FieldsOf extrae el mapa de campos si err es un error de validación.
func FieldsOf(err error) (map[string]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
