package controller

import (
	"clubdeportivo/internal/errs"
)

// FormConfig configura un FormController para una entidad T.
type FormConfig[T any] struct {
	InitialData T
	// Validate devuelve el mapa campo -> mensaje; un mapa vacío es válido.
	Validate func(data T) map[string]string
	// OnSubmit despacha la creación o edición; sus fallos se propagan sin
	// modificar, sin reintentos ni rollback parcial.
	OnSubmit func(data T, isEditing bool) error
	// OnSuccess corre exactamente una vez tras un submit exitoso
	// (típicamente el Refresh del ListController).
	OnSuccess func()
}

// FormController posee el ciclo validar-enviar de una entidad.
type FormController[T any] struct {
	cfg FormConfig[T]

	data      T
	errores   map[string]string
	editing   bool
	editingID string
}

func NewForm[T any](cfg FormConfig[T]) *FormController[T] {
	return &FormController[T]{
		cfg:     cfg,
		data:    cfg.InitialData,
		errores: map[string]string{},
	}
}

func (f *FormController[T]) Data() T {
	return f.data
}

func (f *FormController[T]) SetData(data T) {
	f.data = data
}

// Errores devuelve los errores de la última validación.
func (f *FormController[T]) Errores() map[string]string {
	return f.errores
}

// StartEdit pasa el formulario a modo edición sobre el registro id.
func (f *FormController[T]) StartEdit(id string, data T) {
	f.editing = true
	f.editingID = id
	f.data = data
	f.errores = map[string]string{}
}

func (f *FormController[T]) IsEditing() bool {
	return f.editing
}

// Reset vuelve al estado inicial de creación.
func (f *FormController[T]) Reset() {
	f.editing = false
	f.editingID = ""
	f.data = f.cfg.InitialData
	f.errores = map[string]string{}
}

// Submit valida primero; con cualquier error de campo se aborta sin tocar la
// red y se devuelve el mapa al llamador. Una edición sin identificador falla
// con ErrMissingID.
func (f *FormController[T]) Submit() (map[string]string, error) {
	f.errores = f.cfg.Validate(f.data)
	if len(f.errores) > 0 {
		return f.errores, nil
	}

	if f.editing && f.editingID == "" {
		return nil, errs.ErrMissingID
	}

	if err := f.cfg.OnSubmit(f.data, f.editing); err != nil {
		return nil, err
	}

	if f.cfg.OnSuccess != nil {
		f.cfg.OnSuccess()
	}
	return nil, nil
}
