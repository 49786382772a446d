package notify

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/TenochLab/mochila-85/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDDesdeUUID(t *testing.T) {
	id := "a1b2c3d4-0000-0000-0000-000000000000"

	esperado, err := strconv.ParseInt("1a1b2c3d4", 16, 64)
	require.NoError(t, err)
	assert.Equal(t, esperado, IDRevisionMochila(id))

	esperado, err = strconv.ParseInt("2a1b2c3d4", 16, 64)
	require.NoError(t, err)
	assert.Equal(t, esperado, IDVencimientoItem(id))

	// Different entity types never collide on the same uuid.
	assert.NotEqual(t, IDRevisionMochila(id), IDVencimientoItem(id))

	// Non-hex ids still map to a stable number.
	assert.Equal(t, IDRevisionMochila("zzz"), IDRevisionMochila("zzz"))
	assert.NotZero(t, IDRevisionMochila("zzz"))
}

func TestMemoriaProgramarYCancelar(t *testing.T) {
	m := NewMemoria()
	ctx := context.Background()

	n := Notificacion{ID: 42, Titulo: "prueba", Cuando: time.Now().Add(time.Hour)}
	require.NoError(t, m.Programar(ctx, n))

	pendientes, err := m.Pendientes(ctx)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, int64(42), pendientes[0].ID)

	// Reprogramming the same id replaces, not duplicates.
	n.Titulo = "reprogramada"
	require.NoError(t, m.Programar(ctx, n))
	pendientes, err = m.Pendientes(ctx)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, "reprogramada", pendientes[0].Titulo)

	require.NoError(t, m.Cancelar(ctx, 42))
	pendientes, err = m.Pendientes(ctx)
	require.NoError(t, err)
	assert.Empty(t, pendientes)
}

func TestMemoriaPendientesOrdenadas(t *testing.T) {
	m := NewMemoria()
	ctx := context.Background()

	ahora := time.Now()
	require.NoError(t, m.Programar(ctx, Notificacion{ID: 1, Cuando: ahora.Add(3 * time.Hour)}))
	require.NoError(t, m.Programar(ctx, Notificacion{ID: 2, Cuando: ahora.Add(time.Hour)}))
	require.NoError(t, m.Programar(ctx, Notificacion{ID: 3, Cuando: ahora.Add(2 * time.Hour)}))

	pendientes, err := m.Pendientes(ctx)
	require.NoError(t, err)
	require.Len(t, pendientes, 3)
	assert.Equal(t, int64(2), pendientes[0].ID)
	assert.Equal(t, int64(3), pendientes[1].ID)
	assert.Equal(t, int64(1), pendientes[2].ID)

	require.NoError(t, m.CancelarTodas(ctx))
	pendientes, err = m.Pendientes(ctx)
	require.NoError(t, err)
	assert.Empty(t, pendientes)
}

func TestProgramarVencimientoItem(t *testing.T) {
	m := NewMemoria()
	ctx := context.Background()

	// No expiry date: nothing scheduled.
	require.NoError(t, ProgramarVencimientoItem(ctx, m, &model.Item{ID: "i1", Nombre: "Agua"}, 7))
	pendientes, _ := m.Pendientes(ctx)
	assert.Empty(t, pendientes)

	// Warning time already passed: skipped silently.
	ayer := time.Now().AddDate(0, 0, -1)
	require.NoError(t, ProgramarVencimientoItem(ctx, m, &model.Item{ID: "i2", Nombre: "Latas", FechaVencimiento: &ayer}, 7))
	pendientes, _ = m.Pendientes(ctx)
	assert.Empty(t, pendientes)

	// Expiry far enough out: scheduled diasAntes days before it.
	futuro := time.Now().AddDate(0, 0, 30)
	require.NoError(t, ProgramarVencimientoItem(ctx, m, &model.Item{ID: "i3", Nombre: "Pilas", FechaVencimiento: &futuro}, 7))
	pendientes, _ = m.Pendientes(ctx)
	require.Len(t, pendientes, 1)
	assert.Equal(t, IDVencimientoItem("i3"), pendientes[0].ID)
	assert.WithinDuration(t, futuro.AddDate(0, 0, -7), pendientes[0].Cuando, time.Second)
}

func TestProgramarRevisionMochila(t *testing.T) {
	m := NewMemoria()
	ctx := context.Background()

	mochila := &model.Mochila{ID: "m1", Nombre: "Bolsa A"}
	require.NoError(t, ProgramarRevisionMochila(ctx, m, mochila, 30))

	pendientes, err := m.Pendientes(ctx)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, IDRevisionMochila("m1"), pendientes[0].ID)
	assert.Contains(t, pendientes[0].Cuerpo, "Bolsa A")
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), pendientes[0].Cuando, time.Second)
}
