package validation

import "clubdeportivo/internal/models"

// ValidarMensualidad aplica las reglas de creación: monto no negativo,
// mes 1-12, año dentro de [2020, 2050].
func ValidarMensualidad(m models.Mensualidad) map[string]string {
	return Struct(m)
}

// ValidarMensualidadParcial valida solo los campos presentes en el parcial.
func ValidarMensualidadParcial(updates map[string]interface{}) map[string]string {
	errores := map[string]string{}

	if v, ok := updates["estado"]; ok {
		estado, _ := v.(string)
		switch estado {
		case models.MensualidadPendiente, models.MensualidadPagada, models.MensualidadAnulada:
		default:
			errores["estado"] = "debe ser uno de: pendiente, pagada, anulada"
		}
	}

	if v, ok := updates["monto"]; ok {
		if monto, _ := v.(float64); monto < 0 {
			errores["monto"] = "debe ser mayor o igual a 0"
		}
	}

	if v, ok := updates["mes"]; ok {
		if mes, _ := v.(int); mes < 1 || mes > 12 {
			errores["mes"] = "debe estar entre 1 y 12"
		}
	}

	if v, ok := updates["anio"]; ok {
		if anio, _ := v.(int); anio < 2020 || anio > 2050 {
			errores["anio"] = "debe estar entre 2020 y 2050"
		}
	}

	return errores
}
