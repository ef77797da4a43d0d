package validation

import "clubdeportivo/internal/models"

// ValidarAsistencia aplica las reglas de creación. Una asistencia debe
// referenciar un entrenamiento o un evento; solo "ninguno" se rechaza, y el
// error cuelga del campo del entrenamiento.
func ValidarAsistencia(a models.Asistencia) map[string]string {
	errores := Struct(a)

	if vacio(a.EntrenamientoID) && vacio(a.EventoID) {
		errores["entrenamiento_id"] = "debe referenciar un entrenamiento o un evento"
	}

	return errores
}

// ValidarAsistenciaParcial valida solo los campos presentes en el parcial.
func ValidarAsistenciaParcial(updates map[string]interface{}) map[string]string {
	errores := map[string]string{}

	if v, ok := updates["estado"]; ok {
		estado, _ := v.(string)
		switch estado {
		case models.AsistenciaPresente, models.AsistenciaAusente,
			models.AsistenciaJustificado, models.AsistenciaSinRegistro:
		default:
			errores["estado"] = "debe ser uno de: presente, ausente, justificado, sin_registro"
		}
	}

	return errores
}

func vacio(s *string) bool {
	return s == nil || *s == ""
}
