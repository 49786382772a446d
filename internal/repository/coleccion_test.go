package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevaDB(t *testing.T) *infra.Database {
	t.Helper()
	db := infra.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Abrir())
	t.Cleanup(func() { _ = db.Cerrar() })
	return db
}

func TestColeccionAntesDeAbrir(t *testing.T) {
	db := infra.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	repo := NewMochilaRepository(db)

	_, err := repo.Listar(context.Background())
	assert.ErrorIs(t, err, infra.ErrNoDisponible)

	err = repo.Guardar(context.Background(), &model.Mochila{ID: "m1", Nombre: "Bolsa"})
	assert.ErrorIs(t, err, infra.ErrNoDisponible)
}

func TestColeccionGuardarYObtener(t *testing.T) {
	db := nuevaDB(t)
	repo := NewMochilaRepository(db)
	ctx := context.Background()

	m := &model.Mochila{
		ID:            "m1",
		Nombre:        "Mochila de casa",
		Descripcion:   "La del armario",
		Estado:        model.MochilaNueva,
		FechaCreacion: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Guardar(ctx, m))

	leida, err := repo.ObtenerPorID(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, leida)
	assert.Equal(t, "Mochila de casa", leida.Nombre)
	assert.Equal(t, "La del armario", leida.Descripcion)
	assert.True(t, leida.FechaCreacion.Equal(m.FechaCreacion))
}

func TestColeccionObtenerInexistente(t *testing.T) {
	db := nuevaDB(t)
	repo := NewMochilaRepository(db)

	leida, err := repo.ObtenerPorID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, leida)
}

func TestColeccionGuardarReemplaza(t *testing.T) {
	db := nuevaDB(t)
	repo := NewMochilaRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Guardar(ctx, &model.Mochila{ID: "m1", Nombre: "Antes"}))
	require.NoError(t, repo.Guardar(ctx, &model.Mochila{ID: "m1", Nombre: "Despues"}))

	lista, err := repo.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Despues", lista[0].Nombre)
}

func TestColeccionEliminar(t *testing.T) {
	db := nuevaDB(t)
	repo := NewMochilaRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Guardar(ctx, &model.Mochila{ID: "m1", Nombre: "Bolsa"}))
	require.NoError(t, repo.Eliminar(ctx, "m1"))

	lista, err := repo.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, lista)

	// Deleting an id that is not there is not an error.
	assert.NoError(t, repo.Eliminar(ctx, "m1"))
}

func TestCategoriaObtenerPorNombre(t *testing.T) {
	db := nuevaDB(t)
	repo := NewCategoriaRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Guardar(ctx, &model.Categoria{ID: "c1", Nombre: "Alimentos"}))

	cat, err := repo.ObtenerPorNombre(ctx, "ALIMENTOS")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "c1", cat.ID)

	cat, err = repo.ObtenerPorNombre(ctx, "Ropa")
	require.NoError(t, err)
	assert.Nil(t, cat)
}

func TestItemsListarPorMochilaYCategoria(t *testing.T) {
	db := nuevaDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Guardar(ctx, &model.Item{ID: "i1", Nombre: "Agua", Categoria: "c-agua", MochilaID: "m1", Cantidad: 2}))
	require.NoError(t, repo.Guardar(ctx, &model.Item{ID: "i2", Nombre: "Linterna", Categoria: "c-herr", MochilaID: "m1", Cantidad: 1}))
	require.NoError(t, repo.Guardar(ctx, &model.Item{ID: "i3", Nombre: "Venda", Categoria: "c-med", MochilaID: "m2", Cantidad: 4}))

	porMochila, err := repo.ListarPorMochila(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, porMochila, 2)

	porCategoria, err := repo.ListarPorCategoria(ctx, "c-med")
	require.NoError(t, err)
	require.Len(t, porCategoria, 1)
	assert.Equal(t, "Venda", porCategoria[0].Nombre)
}

func TestCategoriaEmojisYPlantillas(t *testing.T) {
	db := nuevaDB(t)
	repo := NewCategoriaRepository(db)
	ctx := context.Background()

	cat := &model.Categoria{
		ID:     "c1",
		Nombre: "Alimentos",
		Emojis: []string{"🍎", "🥫"},
		ArticulosPredefinidos: []model.Item{
			{ID: "p1", Nombre: "Latas de atún", Categoria: "c1", Cantidad: 3, Predefinido: true},
		},
	}
	require.NoError(t, repo.Guardar(ctx, cat))

	leida, err := repo.ObtenerPorID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, leida)
	assert.Equal(t, []string{"🍎", "🥫"}, leida.Emojis)
	require.Len(t, leida.ArticulosPredefinidos, 1)
	assert.Equal(t, "Latas de atún", leida.ArticulosPredefinidos[0].Nombre)
}
