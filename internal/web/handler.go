package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/roles"
	"clubdeportivo/internal/service"
	"clubdeportivo/internal/settings"

	"go.uber.org/zap"
)

// Handler es la pantalla colaboradora: elige el adaptador de rol para el
// usuario actual y entrega datos, estadísticas y flags de permisos en JSON.
type Handler struct {
	asistencias   service.AsistenciaService
	eventos       service.EventoService
	mensualidades service.MensualidadService
	jugadores     service.JugadorService
	ajustes       *settings.Store
	log           *zap.Logger
}

func NewHandler(
	asistencias service.AsistenciaService,
	eventos service.EventoService,
	mensualidades service.MensualidadService,
	jugadores service.JugadorService,
	ajustes *settings.Store,
	log *zap.Logger,
) *Handler {
	return &Handler{
		asistencias:   asistencias,
		eventos:       eventos,
		mensualidades: mensualidades,
		jugadores:     jugadores,
		ajustes:       ajustes,
		log:           log,
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/asistencias", h.ListarAsistencias)
	mux.HandleFunc("POST /api/asistencias/tomar", h.TomarAsistencia)
	mux.HandleFunc("GET /api/eventos", h.ListarEventos)
	mux.HandleFunc("GET /api/mensualidades", h.ListarMensualidades)
	mux.HandleFunc("POST /api/mensualidades/{id}/pagar", h.PagarMensualidad)
	mux.HandleFunc("GET /api/ajustes/ventana", h.VerVentana)
	mux.HandleFunc("PUT /api/ajustes/ventana", h.GuardarVentana)
	return mux
}

type listaResponse[T any] struct {
	Items    []T            `json:"items"`
	Stats    map[string]int `json:"stats"`
	Permisos roles.Permisos `json:"permisos"`
}

func (h *Handler) ListarAsistencias(w http.ResponseWriter, r *http.Request) {
	rol := r.URL.Query().Get("rol")

	var (
		adapter *roles.AsistenciaAdapter
		err     error
	)
	switch rol {
	case models.RolAdmin:
		adapter, err = roles.NewAsistenciaAdmin(h.asistencias, h.log)
	case models.RolEntrenador:
		adapter, err = roles.NewAsistenciaEntrenador(h.asistencias, h.log)
	case models.RolJugador:
		adapter, err = roles.NewAsistenciaJugador(h.asistencias, r.URL.Query().Get("jugador_id"), h.log)
	case models.RolApoderado:
		var ids []string
		ids, err = h.jugadoresDeApoderado(r.URL.Query().Get("apoderado_id"))
		if err == nil {
			adapter, err = roles.NewAsistenciaApoderado(h.asistencias, ids, h.log)
		}
	default:
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("rol desconocido: %q", rol))
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := adapter.Lista.Refresh(); err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}

	if busqueda := r.URL.Query().Get("busqueda"); busqueda != "" {
		adapter.Lista.SetFiltro("busqueda", busqueda)
	}
	if estado := r.URL.Query().Get("estado"); estado != "" {
		adapter.Lista.SetFiltro("estado", estado)
	}

	h.writeJSON(w, http.StatusOK, listaResponse[models.Asistencia]{
		Items:    adapter.Lista.ItemsFiltrados(),
		Stats:    adapter.Lista.Stats(),
		Permisos: adapter.Permisos,
	})
}

type tomarAsistenciaRequest struct {
	EntrenamientoID string `json:"entrenamiento_id"`
	Fecha           string `json:"fecha"`
	Entradas        []struct {
		JugadorID string `json:"jugador_id"`
		Estado    string `json:"estado"`
	} `json:"entradas"`
}

func (h *Handler) TomarAsistencia(w http.ResponseWriter, r *http.Request) {
	var req tomarAsistenciaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	ventana, err := h.ajustes.VentanaAsistencia()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ventana.Permite(time.Now().Hour()) {
		h.writeError(w, http.StatusForbidden,
			fmt.Errorf("fuera de la ventana de asistencia (%02d:00-%02d:00)", ventana.Inicio, ventana.Fin))
		return
	}

	fecha, perr := time.Parse("2006-01-02", req.Fecha)
	if perr != nil {
		fecha = time.Now()
	}

	adapter, err := roles.NewAsistenciaEntrenador(h.asistencias, h.log)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	entradas := make([]service.EntradaAsistencia, 0, len(req.Entradas))
	for _, e := range req.Entradas {
		entradas = append(entradas, service.EntradaAsistencia{JugadorID: e.JugadorID, Estado: e.Estado})
	}

	// Semántica al-menos-esfuerzo: los fallos parciales no se revierten,
	// solo se reportan.
	if err := adapter.TomarAsistencia(req.EntrenamientoID, fecha, entradas); err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]int{"registradas": len(entradas)})
}

func (h *Handler) ListarEventos(w http.ResponseWriter, r *http.Request) {
	rol := r.URL.Query().Get("rol")

	var (
		adapter *roles.EventoAdapter
		err     error
	)
	switch rol {
	case models.RolAdmin:
		adapter, err = roles.NewEventoAdmin(h.eventos, h.log)
	case models.RolEntrenador:
		adapter, err = roles.NewEventoEntrenador(h.eventos, r.URL.Query().Get("usuario_id"), h.log)
	case models.RolJugador:
		adapter, err = roles.NewEventoJugador(h.eventos, h.log)
	case models.RolApoderado:
		adapter, err = roles.NewEventoApoderado(h.eventos, h.log)
	default:
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("rol desconocido: %q", rol))
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Vistas de calendario: próximos (con ventana en días) o pasados
	switch r.URL.Query().Get("vista") {
	case "proximos":
		dias := 30
		if d := r.URL.Query().Get("dias"); d != "" {
			fmt.Sscanf(d, "%d", &dias)
		}
		eventos, verr := adapter.Proximos(dias)
		if verr != nil {
			h.writeError(w, http.StatusBadGateway, verr)
			return
		}
		h.writeJSON(w, http.StatusOK, listaResponse[models.Evento]{
			Items: eventos, Stats: map[string]int{"total": len(eventos)}, Permisos: adapter.Permisos,
		})
		return
	case "pasados":
		eventos, verr := adapter.Pasados()
		if verr != nil {
			h.writeError(w, http.StatusBadGateway, verr)
			return
		}
		h.writeJSON(w, http.StatusOK, listaResponse[models.Evento]{
			Items: eventos, Stats: map[string]int{"total": len(eventos)}, Permisos: adapter.Permisos,
		})
		return
	}

	if err := adapter.Lista.Refresh(); err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}
	if tipo := r.URL.Query().Get("tipo"); tipo != "" {
		adapter.Lista.SetFiltro("tipo", tipo)
	}
	if busqueda := r.URL.Query().Get("busqueda"); busqueda != "" {
		adapter.Lista.SetFiltro("busqueda", busqueda)
	}

	h.writeJSON(w, http.StatusOK, listaResponse[models.Evento]{
		Items:    adapter.Lista.ItemsFiltrados(),
		Stats:    adapter.Lista.Stats(),
		Permisos: adapter.Permisos,
	})
}

func (h *Handler) ListarMensualidades(w http.ResponseWriter, r *http.Request) {
	rol := r.URL.Query().Get("rol")

	var (
		adapter *roles.MensualidadAdapter
		err     error
	)
	switch rol {
	case models.RolAdmin:
		adapter, err = roles.NewMensualidadAdmin(h.mensualidades, h.log)
	case models.RolJugador:
		adapter, err = roles.NewMensualidadJugador(h.mensualidades, r.URL.Query().Get("jugador_id"), h.log)
	case models.RolApoderado:
		var ids []string
		ids, err = h.jugadoresDeApoderado(r.URL.Query().Get("apoderado_id"))
		if err == nil {
			adapter, err = roles.NewMensualidadApoderado(h.mensualidades, ids, h.log)
		}
	default:
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("rol sin acceso a mensualidades: %q", rol))
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := adapter.Lista.Refresh(); err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}
	if estado := r.URL.Query().Get("estado"); estado != "" {
		adapter.Lista.SetFiltro("estado", estado)
	}
	if anio := r.URL.Query().Get("anio"); anio != "" {
		adapter.Lista.SetFiltro("anio", anio)
	}

	h.writeJSON(w, http.StatusOK, listaResponse[models.Mensualidad]{
		Items:    adapter.Lista.ItemsFiltrados(),
		Stats:    adapter.Lista.Stats(),
		Permisos: adapter.Permisos,
	})
}

type pagarRequest struct {
	Rol        string `json:"rol"`
	MetodoPago string `json:"metodo_pago"`
}

func (h *Handler) PagarMensualidad(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, errs.ErrMissingID)
		return
	}

	var req pagarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if !models.RolValido(req.Rol) {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("rol desconocido: %q", req.Rol))
		return
	}

	// El pago pasa por el adaptador del rol, nunca directo al servicio: es el
	// adaptador quien porta el permiso CanEdit de la matriz.
	var (
		adapter *roles.MensualidadAdapter
		err     error
	)
	switch req.Rol {
	case models.RolAdmin:
		adapter, err = roles.NewMensualidadAdmin(h.mensualidades, h.log)
	case models.RolJugador:
		adapter, err = roles.NewMensualidadJugador(h.mensualidades, r.URL.Query().Get("jugador_id"), h.log)
	case models.RolApoderado:
		var ids []string
		ids, err = h.jugadoresDeApoderado(r.URL.Query().Get("apoderado_id"))
		if err == nil {
			adapter, err = roles.NewMensualidadApoderado(h.mensualidades, ids, h.log)
		}
	default:
		h.writeError(w, http.StatusForbidden, fmt.Errorf("rol sin acceso a mensualidades: %q", req.Rol))
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if !adapter.Permisos.CanEdit {
		h.writeError(w, http.StatusForbidden, fmt.Errorf("el rol %s no puede pagar mensualidades", req.Rol))
		return
	}

	mensualidad, err := adapter.Pagar(id, req.MetodoPago)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, errs.ErrEstadoFinal) || errors.Is(err, errs.ErrNoEncontrado) {
			status = http.StatusConflict
		}
		h.writeError(w, status, err)
		return
	}

	h.writeJSON(w, http.StatusOK, mensualidad)
}

func (h *Handler) VerVentana(w http.ResponseWriter, r *http.Request) {
	ventana, err := h.ajustes.VentanaAsistencia()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ventana)
}

func (h *Handler) GuardarVentana(w http.ResponseWriter, r *http.Request) {
	var ventana settings.VentanaAsistencia
	if err := json.NewDecoder(r.Body).Decode(&ventana); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.ajustes.GuardarVentana(ventana); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ventana)
}

func (h *Handler) jugadoresDeApoderado(apoderadoID string) ([]string, error) {
	jugadores, err := h.jugadores.GetByApoderado(apoderadoID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(jugadores))
	for _, j := range jugadores {
		ids = append(ids, j.ID)
	}
	return ids, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("error codificando respuesta", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.log.Warn("request falló", zap.Int("status", status), zap.Error(err))
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
