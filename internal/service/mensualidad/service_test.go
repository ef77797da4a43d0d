package mensualidad_service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/service"
)

// fakeMensualidadRepo imita el contrato del repositorio real: Create y Update
// releen por id, y toda lectura devuelve la proyección con el nombre del
// jugador ya resuelto.
type fakeMensualidadRepo struct {
	filas   map[string]*models.Mensualidad
	orden   []string
	nombres map[string]string

	ultimoUpdateID string
	ultimoUpdates  map[string]interface{}
}

func nuevaFakeRepo(filas ...*models.Mensualidad) *fakeMensualidadRepo {
	f := &fakeMensualidadRepo{filas: map[string]*models.Mensualidad{}}
	for _, m := range filas {
		f.filas[m.ID] = m
		f.orden = append(f.orden, m.ID)
	}
	return f
}

func (f *fakeMensualidadRepo) Create(m *models.Mensualidad) (*models.Mensualidad, error) {
	if m.ID == "" {
		m.ID = "generada"
	}
	f.filas[m.ID] = m
	f.orden = append(f.orden, m.ID)
	return f.GetByID(m.ID)
}

func (f *fakeMensualidadRepo) GetAll() ([]models.Mensualidad, error) {
	var todas []models.Mensualidad
	for _, id := range f.orden {
		m, _ := f.GetByID(id)
		todas = append(todas, *m)
	}
	return todas, nil
}

func (f *fakeMensualidadRepo) GetByID(id string) (*models.Mensualidad, error) {
	m, ok := f.filas[id]
	if !ok {
		return nil, nil
	}
	proyeccion := *m
	proyeccion.JugadorNombre = f.nombres[m.JugadorID]
	return &proyeccion, nil
}

func (f *fakeMensualidadRepo) Update(id string, updates map[string]interface{}) (*models.Mensualidad, error) {
	f.ultimoUpdateID = id
	f.ultimoUpdates = updates

	m, ok := f.filas[id]
	if !ok {
		return nil, nil
	}
	if estado, ok := updates["estado"].(string); ok {
		m.Estado = estado
	}
	return f.GetByID(id)
}

func (f *fakeMensualidadRepo) Delete(string) error { return nil }
func (f *fakeMensualidadRepo) GetByJugador(string) ([]models.Mensualidad, error) {
	return nil, nil
}
func (f *fakeMensualidadRepo) GetByEstado(string) ([]models.Mensualidad, error) {
	return nil, nil
}
func (f *fakeMensualidadRepo) GetByPeriodo(int, int) ([]models.Mensualidad, error) {
	return nil, nil
}
func (f *fakeMensualidadRepo) GetVencidas() ([]models.Mensualidad, error) { return nil, nil }

func TestPagarPendiente(t *testing.T) {
	repo := nuevaFakeRepo(&models.Mensualidad{ID: "m1", Estado: models.MensualidadPendiente})
	svc := NewMensualidadService(repo)

	fecha := time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC)
	pagada, err := svc.Pagar("m1", "transferencia", fecha)
	if err != nil {
		t.Fatalf("Pagar: %v", err)
	}
	if pagada.Estado != models.MensualidadPagada {
		t.Errorf("estado = %q, want pagada", pagada.Estado)
	}
	if repo.ultimoUpdates["metodo_pago"] != "transferencia" {
		t.Errorf("metodo_pago = %v", repo.ultimoUpdates["metodo_pago"])
	}
	if repo.ultimoUpdates["fecha_pago"] != "2025-04-07" {
		t.Errorf("fecha_pago = %v, want 2025-04-07", repo.ultimoUpdates["fecha_pago"])
	}
}

func TestPagarEstadoTerminal(t *testing.T) {
	for _, estado := range []string{models.MensualidadPagada, models.MensualidadAnulada} {
		repo := nuevaFakeRepo(&models.Mensualidad{ID: "m1", Estado: estado})
		svc := NewMensualidadService(repo)

		_, err := svc.Pagar("m1", "efectivo", time.Now())
		if !errors.Is(err, errs.ErrEstadoFinal) {
			t.Errorf("Pagar sobre %s: err = %v, want ErrEstadoFinal", estado, err)
		}
		if repo.ultimoUpdates != nil {
			t.Errorf("Pagar sobre %s no debió tocar el store", estado)
		}
	}
}

func TestPagarInexistente(t *testing.T) {
	svc := NewMensualidadService(nuevaFakeRepo())

	_, err := svc.Pagar("fantasma", "efectivo", time.Now())
	if !errors.Is(err, errs.ErrNoEncontrado) {
		t.Fatalf("err = %v, want ErrNoEncontrado", err)
	}
}

func TestAnularPendiente(t *testing.T) {
	repo := nuevaFakeRepo(&models.Mensualidad{ID: "m1", Estado: models.MensualidadPendiente})
	svc := NewMensualidadService(repo)

	anulada, err := svc.Anular("m1")
	if err != nil {
		t.Fatalf("Anular: %v", err)
	}
	if anulada.Estado != models.MensualidadAnulada {
		t.Errorf("estado = %q, want anulada", anulada.Estado)
	}
	if len(repo.ultimoUpdates) != 1 {
		t.Errorf("Anular solo cambia el estado, updates = %v", repo.ultimoUpdates)
	}
}

func TestAnularAnulada(t *testing.T) {
	repo := nuevaFakeRepo(&models.Mensualidad{ID: "m1", Estado: models.MensualidadAnulada})
	svc := NewMensualidadService(repo)

	if _, err := svc.Anular("m1"); !errors.Is(err, errs.ErrEstadoFinal) {
		t.Fatalf("err = %v, want ErrEstadoFinal", err)
	}
}

func TestCreateAsumePendiente(t *testing.T) {
	repo := nuevaFakeRepo()
	svc := NewMensualidadService(repo)

	creada, err := svc.Create(models.Mensualidad{JugadorID: "j1", Monto: 25000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if creada.Estado != models.MensualidadPendiente {
		t.Errorf("estado = %q, want pendiente por defecto", creada.Estado)
	}
}

func TestUpdateSoloCamposPresentes(t *testing.T) {
	repo := nuevaFakeRepo(&models.Mensualidad{ID: "m1", Estado: models.MensualidadPendiente})
	svc := NewMensualidadService(repo)

	monto := 30000.0
	if _, err := svc.Update("m1", service.CambiosMensualidad{Monto: &monto}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(repo.ultimoUpdates) != 1 {
		t.Fatalf("updates = %v, want solo monto", repo.ultimoUpdates)
	}
	if repo.ultimoUpdates["monto"] != monto {
		t.Errorf("monto = %v, want %v", repo.ultimoUpdates["monto"], monto)
	}
}

func TestUpdateRechazaParcialInvalido(t *testing.T) {
	repo := nuevaFakeRepo(&models.Mensualidad{ID: "m1", Estado: models.MensualidadPendiente})
	svc := NewMensualidadService(repo)

	estado := "morosa"
	mes := 13
	_, err := svc.Update("m1", service.CambiosMensualidad{Estado: &estado, Mes: &mes})

	campos, ok := errs.FieldsOf(err)
	if !ok {
		t.Fatalf("err = %v, want un error de validación", err)
	}
	for _, campo := range []string{"estado", "mes"} {
		if _, ok := campos[campo]; !ok {
			t.Errorf("esperaba error en %q, got %v", campo, campos)
		}
	}
	// con errores de campo no se toca el store
	if repo.ultimoUpdates != nil {
		t.Errorf("el store no debió invocarse, got %v", repo.ultimoUpdates)
	}
}

// Create relee por id, así el llamador recibe la misma proyección enriquecida
// que entrega GetAll.
func TestCreateDevuelveLaProyeccionDeGetAll(t *testing.T) {
	repo := nuevaFakeRepo()
	repo.nombres = map[string]string{"j1": "Ana Soto"}
	svc := NewMensualidadService(repo)

	creada, err := svc.Create(models.Mensualidad{
		JugadorID:        "j1",
		Monto:            25000,
		FechaVencimiento: time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC),
		Mes:              4,
		Anio:             2025,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if creada.JugadorNombre != "Ana Soto" {
		t.Errorf("jugador_nombre = %q, la creación debe volver ya enriquecida", creada.JugadorNombre)
	}

	porID, err := svc.GetByID(creada.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(creada, porID) {
		t.Errorf("GetByID = %+v, want %+v", porID, creada)
	}

	todas, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(todas) != 1 || !reflect.DeepEqual(*creada, todas[0]) {
		t.Errorf("GetAll = %+v, want la misma proyección que Create", todas)
	}
}

func TestUpdateVacioNoAlteraLaFila(t *testing.T) {
	repo := nuevaFakeRepo(&models.Mensualidad{ID: "m1", Estado: models.MensualidadPendiente, Monto: 25000})
	svc := NewMensualidadService(repo)

	m, err := svc.Update("m1", service.CambiosMensualidad{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(repo.ultimoUpdates) != 0 {
		t.Errorf("un parcial vacío no envía campos, got %v", repo.ultimoUpdates)
	}
	if m.Monto != 25000 || m.Estado != models.MensualidadPendiente {
		t.Errorf("la fila debió quedar sin cambios: %+v", m)
	}
}
