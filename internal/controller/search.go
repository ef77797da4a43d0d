package controller

import (
	"fmt"
	"reflect"
	"strings"
)

// valorDeCampo resuelve una ruta con puntos ("jugador.nombre") sobre un
// struct siguiendo los tags json, desreferenciando punteros por el camino.
// Devuelve false si algún segmento no existe o es nil.
func valorDeCampo(item interface{}, ruta string) (string, bool) {
	v := reflect.ValueOf(item)

	for _, segmento := range strings.Split(ruta, ".") {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return "", false
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return "", false
		}

		campo, ok := campoPorTag(v, segmento)
		if !ok {
			return "", false
		}
		v = campo
	}

	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return fmt.Sprintf("%v", v.Interface()), true
	}
	return "", false
}

func campoPorTag(v reflect.Value, nombre string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if tag == nombre {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
