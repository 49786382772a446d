package notify

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Memoria is the in-process scheduler used when no Redis is configured.
// Reminders do not survive a restart.
type Memoria struct {
	mu             sync.Mutex
	pendientes     map[int64]Notificacion
	temporizadores map[int64]*time.Timer
}

func NewMemoria() *Memoria {
	return &Memoria{
		pendientes:     make(map[int64]Notificacion),
		temporizadores: make(map[int64]*time.Timer),
	}
}

// Programar arms a timer for the reminder; an existing reminder with the
// same id is replaced. A reminder whose time already passed fires at once.
func (m *Memoria) Programar(_ context.Context, n Notificacion) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.temporizadores[n.ID]; ok {
		t.Stop()
	}

	retraso := time.Until(n.Cuando)
	if retraso < 0 {
		retraso = 0
	}
	m.pendientes[n.ID] = n
	m.temporizadores[n.ID] = time.AfterFunc(retraso, func() { m.entregar(n.ID) })
	return nil
}

func (m *Memoria) entregar(id int64) {
	m.mu.Lock()
	n, ok := m.pendientes[id]
	delete(m.pendientes, id)
	delete(m.temporizadores, id)
	m.mu.Unlock()

	if ok {
		log.Info().Int64("id", n.ID).Str("titulo", n.Titulo).Str("cuerpo", n.Cuerpo).Msg("recordatorio")
	}
}

func (m *Memoria) Cancelar(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.temporizadores[id]; ok {
		t.Stop()
	}
	delete(m.temporizadores, id)
	delete(m.pendientes, id)
	return nil
}

func (m *Memoria) CancelarTodas(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, t := range m.temporizadores {
		t.Stop()
		delete(m.temporizadores, id)
	}
	m.pendientes = make(map[int64]Notificacion)
	return nil
}

func (m *Memoria) Pendientes(_ context.Context) ([]Notificacion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]Notificacion, 0, len(m.pendientes))
	for _, n := range m.pendientes {
		result = append(result, n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Cuando.Before(result[j].Cuando) })
	return result, nil
}
