package models

import "time"

// Estados de mensualidad. Pagada y anulada son terminales.
const (
	MensualidadPendiente = "pendiente"
	MensualidadPagada    = "pagada"
	MensualidadAnulada   = "anulada"
)

type Mensualidad struct {
	ID               string     `db:"id" json:"id"`
	JugadorID        string     `db:"jugador_id" json:"jugador_id" validate:"required"`
	Monto            float64    `db:"monto" json:"monto" validate:"gte=0"`
	Estado           string     `db:"estado" json:"estado" validate:"required,oneof=pendiente pagada anulada"`
	FechaVencimiento time.Time  `db:"fecha_vencimiento" json:"fecha_vencimiento" validate:"required"`
	Mes              int        `db:"mes" json:"mes" validate:"gte=1,lte=12"`
	Anio             int        `db:"anio" json:"anio" validate:"gte=2020,lte=2050"`
	FechaPago        *time.Time `db:"fecha_pago" json:"fecha_pago,omitempty"`
	MetodoPago       *string    `db:"metodo_pago" json:"metodo_pago,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`

	// Joined fields
	JugadorNombre string `db:"jugador_nombre" json:"jugador_nombre,omitempty"`
}

// Vencida is derived on every read, never stored. A mensualidad due today
// is not yet vencida; the comparison is at calendar-date precision.
func (m *Mensualidad) Vencida(now time.Time) bool {
	if m.Estado != MensualidadPendiente {
		return false
	}
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	venc := time.Date(m.FechaVencimiento.Year(), m.FechaVencimiento.Month(), m.FechaVencimiento.Day(), 0, 0, 0, 0, time.UTC)
	return venc.Before(hoy)
}
