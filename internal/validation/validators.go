package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator usa los nombres de tag json para los errores en lugar de los
// nombres de campo de Go.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct valida s y devuelve el mapa campo -> mensaje; un mapa vacío
// significa válido. Nunca toca la red.
func Struct(s interface{}) map[string]string {
	errores := map[string]string{}

	err := validate.Struct(s)
	if err == nil {
		return errores
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errores["_"] = err.Error()
		return errores
	}

	for _, fe := range verrs {
		errores[fe.Field()] = mensaje(fe)
	}
	return errores
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es obligatorio"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	default:
		return "valor inválido"
	}
}
