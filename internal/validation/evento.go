package validation

import "clubdeportivo/internal/models"

// ValidarEvento aplica las reglas de creación de eventos.
func ValidarEvento(e models.Evento) map[string]string {
	return Struct(e)
}

// ValidarEventoParcial valida solo los campos presentes en el parcial.
func ValidarEventoParcial(updates map[string]interface{}) map[string]string {
	errores := map[string]string{}

	if v, ok := updates["tipo"]; ok {
		tipo, _ := v.(string)
		switch tipo {
		case models.EventoPartido, models.EventoTorneo,
			models.EventoAmistoso, models.EventoEntrenamiento:
		default:
			errores["tipo"] = "debe ser uno de: partido, torneo, amistoso, entrenamiento"
		}
	}

	if v, ok := updates["titulo"]; ok {
		if titulo, _ := v.(string); titulo == "" {
			errores["titulo"] = "este campo es obligatorio"
		}
	}

	return errores
}
