package web

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/service"

	"go.uber.org/zap"
)

type fakeMensualidadService struct {
	pagadas     []string
	fallarPagar error
}

func (f *fakeMensualidadService) Create(m models.Mensualidad) (*models.Mensualidad, error) {
	return &m, nil
}
func (f *fakeMensualidadService) GetAll() ([]models.Mensualidad, error)       { return nil, nil }
func (f *fakeMensualidadService) GetByID(string) (*models.Mensualidad, error) { return nil, nil }
func (f *fakeMensualidadService) Update(string, service.CambiosMensualidad) (*models.Mensualidad, error) {
	return nil, nil
}
func (f *fakeMensualidadService) Delete(string) error { return nil }
func (f *fakeMensualidadService) GetByJugador(string) ([]models.Mensualidad, error) {
	return nil, nil
}
func (f *fakeMensualidadService) GetByEstado(string) ([]models.Mensualidad, error) {
	return nil, nil
}
func (f *fakeMensualidadService) GetByPeriodo(int, int) ([]models.Mensualidad, error) {
	return nil, nil
}
func (f *fakeMensualidadService) GetVencidas() ([]models.Mensualidad, error) { return nil, nil }

func (f *fakeMensualidadService) Pagar(id, metodoPago string, fechaPago time.Time) (*models.Mensualidad, error) {
	if f.fallarPagar != nil {
		return nil, f.fallarPagar
	}
	f.pagadas = append(f.pagadas, id)
	return &models.Mensualidad{ID: id, Estado: models.MensualidadPagada}, nil
}

func (f *fakeMensualidadService) Anular(id string) (*models.Mensualidad, error) {
	return &models.Mensualidad{ID: id, Estado: models.MensualidadAnulada}, nil
}

type fakeJugadorService struct {
	porApoderado map[string][]models.Jugador
}

func (f *fakeJugadorService) GetAll() ([]models.Jugador, error)            { return nil, nil }
func (f *fakeJugadorService) GetByID(string) (*models.Jugador, error)      { return nil, nil }
func (f *fakeJugadorService) GetByUsuario(string) (*models.Jugador, error) { return nil, nil }
func (f *fakeJugadorService) GetByApoderado(apoderadoID string) ([]models.Jugador, error) {
	return f.porApoderado[apoderadoID], nil
}

func pagarHandler(mensualidades service.MensualidadService, jugadores service.JugadorService) *Handler {
	return NewHandler(nil, nil, mensualidades, jugadores, nil, zap.NewNop())
}

func postPagar(h *Handler, id, body, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/mensualidades/"+id+"/pagar"+query, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestPagarMensualidadRechazaRolesSinPermiso(t *testing.T) {
	tests := []struct {
		rol        string
		wantStatus int
	}{
		{rol: "jugador", wantStatus: 403},
		{rol: "entrenador", wantStatus: 403},
		{rol: "arbitro", wantStatus: 400},
		{rol: "", wantStatus: 400},
	}

	for _, tt := range tests {
		svc := &fakeMensualidadService{}
		h := pagarHandler(svc, &fakeJugadorService{})

		rec := postPagar(h, "m1", fmt.Sprintf(`{"rol":%q,"metodo_pago":"efectivo"}`, tt.rol), "")
		if rec.Code != tt.wantStatus {
			t.Errorf("rol %q: status = %d, want %d", tt.rol, rec.Code, tt.wantStatus)
		}
		// el rechazo ocurre antes de tocar el servicio
		if len(svc.pagadas) != 0 {
			t.Errorf("rol %q: pagadas = %v, el servicio no debió invocarse", tt.rol, svc.pagadas)
		}
	}
}

func TestPagarMensualidadComoApoderado(t *testing.T) {
	svc := &fakeMensualidadService{}
	jugadores := &fakeJugadorService{porApoderado: map[string][]models.Jugador{
		"a1": {{ID: "p1"}},
	}}
	h := pagarHandler(svc, jugadores)

	rec := postPagar(h, "m1", `{"rol":"apoderado","metodo_pago":"transferencia"}`, "?apoderado_id=a1")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(svc.pagadas) != 1 || svc.pagadas[0] != "m1" {
		t.Errorf("pagadas = %v, want [m1]", svc.pagadas)
	}
}

func TestPagarMensualidadComoAdmin(t *testing.T) {
	svc := &fakeMensualidadService{}
	h := pagarHandler(svc, &fakeJugadorService{})

	rec := postPagar(h, "m1", `{"rol":"admin","metodo_pago":"efectivo"}`, "")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(svc.pagadas) != 1 {
		t.Errorf("pagadas = %v, want [m1]", svc.pagadas)
	}
}

func TestPagarMensualidadEstadoFinal(t *testing.T) {
	svc := &fakeMensualidadService{
		fallarPagar: fmt.Errorf("mensualidad m1 en estado pagada: %w", errs.ErrEstadoFinal),
	}
	h := pagarHandler(svc, &fakeJugadorService{})

	rec := postPagar(h, "m1", `{"rol":"admin","metodo_pago":"efectivo"}`, "")
	if rec.Code != 409 {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}
