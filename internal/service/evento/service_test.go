package evento_service

import (
	"errors"
	"testing"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/service"
)

type fakeEventoRepo struct {
	filas map[string]*models.Evento

	ultimoUpdates map[string]interface{}
}

func nuevaFakeRepo(filas ...*models.Evento) *fakeEventoRepo {
	f := &fakeEventoRepo{filas: map[string]*models.Evento{}}
	for _, e := range filas {
		f.filas[e.ID] = e
	}
	return f
}

func (f *fakeEventoRepo) Create(e *models.Evento) (*models.Evento, error) {
	f.filas[e.ID] = e
	return e, nil
}

func (f *fakeEventoRepo) GetAll() ([]models.Evento, error) { return nil, nil }

func (f *fakeEventoRepo) GetByID(id string) (*models.Evento, error) {
	return f.filas[id], nil
}

func (f *fakeEventoRepo) Update(id string, updates map[string]interface{}) (*models.Evento, error) {
	f.ultimoUpdates = updates
	return f.filas[id], nil
}

func (f *fakeEventoRepo) Delete(string) error { return nil }
func (f *fakeEventoRepo) GetByOrganizador(string) ([]models.Evento, error) {
	return nil, nil
}
func (f *fakeEventoRepo) GetProximos(int) ([]models.Evento, error) { return nil, nil }
func (f *fakeEventoRepo) GetPasados() ([]models.Evento, error)     { return nil, nil }
func (f *fakeEventoRepo) GetByTipo(string) ([]models.Evento, error) {
	return nil, nil
}

func TestUpdateComoOrganizador(t *testing.T) {
	repo := nuevaFakeRepo(&models.Evento{ID: "ev1", OrganizadorID: "u1"})
	svc := NewEventoService(repo)

	lugar := "Cancha 2"
	if _, err := svc.UpdateComoOrganizador("ev1", "u1", service.CambiosEvento{Lugar: &lugar}); err != nil {
		t.Fatalf("UpdateComoOrganizador: %v", err)
	}
	if len(repo.ultimoUpdates) != 1 || repo.ultimoUpdates["lugar"] != lugar {
		t.Errorf("updates = %v, want solo lugar", repo.ultimoUpdates)
	}
}

func TestUpdateComoOrganizadorAjeno(t *testing.T) {
	repo := nuevaFakeRepo(&models.Evento{ID: "ev1", OrganizadorID: "u1"})
	svc := NewEventoService(repo)

	lugar := "Cancha 2"
	if _, err := svc.UpdateComoOrganizador("ev1", "u2", service.CambiosEvento{Lugar: &lugar}); err == nil {
		t.Fatal("la edición de un no-organizador debió rechazarse")
	}
	if repo.ultimoUpdates != nil {
		t.Errorf("el store no debió invocarse, got %v", repo.ultimoUpdates)
	}
}

func TestUpdateComoOrganizadorInexistente(t *testing.T) {
	svc := NewEventoService(nuevaFakeRepo())

	lugar := "Cancha 2"
	_, err := svc.UpdateComoOrganizador("fantasma", "u1", service.CambiosEvento{Lugar: &lugar})
	if !errors.Is(err, errs.ErrNoEncontrado) {
		t.Fatalf("err = %v, want ErrNoEncontrado", err)
	}
}

func TestUpdateRechazaParcialInvalido(t *testing.T) {
	repo := nuevaFakeRepo(&models.Evento{ID: "ev1", OrganizadorID: "u1"})
	svc := NewEventoService(repo)

	tipo := "ceremonia"
	titulo := ""
	_, err := svc.Update("ev1", service.CambiosEvento{Tipo: &tipo, Titulo: &titulo})

	campos, ok := errs.FieldsOf(err)
	if !ok {
		t.Fatalf("err = %v, want un error de validación", err)
	}
	for _, campo := range []string{"tipo", "titulo"} {
		if _, ok := campos[campo]; !ok {
			t.Errorf("esperaba error en %q, got %v", campo, campos)
		}
	}
	if repo.ultimoUpdates != nil {
		t.Errorf("el store no debió invocarse, got %v", repo.ultimoUpdates)
	}
}
