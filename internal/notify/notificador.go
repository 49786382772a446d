// Package notify schedules user-facing reminders (mochila review, item
// expiry) for delivery at an absolute time. Two implementations exist: an
// in-memory timer-based scheduler and a Redis-backed one that survives
// restarts.
package notify

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/TenochLab/mochila-85/internal/model"
)

// Notificacion is a reminder scheduled for an absolute time.
type Notificacion struct {
	ID     int64             `json:"id"`
	Titulo string            `json:"titulo"`
	Cuerpo string            `json:"cuerpo"`
	Cuando time.Time         `json:"cuando"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// Notificador schedules reminders. Scheduling the same id again replaces the
// previous reminder; delivery guarantees are the implementation's concern.
type Notificador interface {
	Programar(ctx context.Context, n Notificacion) error
	Cancelar(ctx context.Context, id int64) error
	CancelarTodas(ctx context.Context) error
	Pendientes(ctx context.Context) ([]Notificacion, error)
}

// IDRevisionMochila derives the reminder id for a mochila's review.
func IDRevisionMochila(mochilaID string) int64 { return idDesdeUUID('1', mochilaID) }

// IDVencimientoItem derives the reminder id for an item's expiry.
func IDVencimientoItem(itemID string) int64 { return idDesdeUUID('2', itemID) }

// idDesdeUUID reinterprets the first 8 hex characters of the entity uuid,
// prefixed by a type digit, as a number. Non-hex ids fall back to a hash so
// the id stays stable either way.
func idDesdeUUID(prefijo byte, id string) int64 {
	trunc := id
	if len(trunc) > 8 {
		trunc = trunc[:8]
	}
	v, err := strconv.ParseInt(string(prefijo)+trunc, 16, 64)
	if err != nil {
		h := fnv.New32a()
		h.Write([]byte(id))
		return int64(prefijo-'0')<<32 | int64(h.Sum32())
	}
	return v
}

// ProgramarRevisionMochila schedules the "time to review" reminder dias days
// from now.
func ProgramarRevisionMochila(ctx context.Context, n Notificador, m *model.Mochila, dias int) error {
	return n.Programar(ctx, Notificacion{
		ID:     IDRevisionMochila(m.ID),
		Titulo: "¡Hora de revisar tu mochila!",
		Cuerpo: fmt.Sprintf("Es tiempo de revisar tu mochila %q para asegurarte de que todo esté en orden.", m.Nombre),
		Cuando: time.Now().AddDate(0, 0, dias),
		Extra:  map[string]string{"tipo": "revision-mochila", "mochilaId": m.ID},
	})
}

// ProgramarVencimientoItem schedules the expiry warning diasAntes days before
// the item's expiry date. Items without an expiry, or whose warning time has
// already passed, are skipped silently.
func ProgramarVencimientoItem(ctx context.Context, n Notificador, i *model.Item, diasAntes int) error {
	if i.FechaVencimiento == nil {
		return nil
	}
	cuando := i.FechaVencimiento.AddDate(0, 0, -diasAntes)
	if !cuando.After(time.Now()) {
		return nil
	}
	return n.Programar(ctx, Notificacion{
		ID:     IDVencimientoItem(i.ID),
		Titulo: "¡Artículo por vencer!",
		Cuerpo: fmt.Sprintf("Tu artículo %q vencerá en %d días (%s).", i.Nombre, diasAntes, i.FechaVencimiento.Format("02/01/2006")),
		Cuando: cuando,
		Extra:  map[string]string{"tipo": "item-vencimiento", "itemId": i.ID},
	})
}
