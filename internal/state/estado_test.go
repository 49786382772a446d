package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/TenochLab/mochila-85/internal/data"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/notify"
	"github.com/TenochLab/mochila-85/internal/repository"
	"github.com/TenochLab/mochila-85/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoEstado(t *testing.T) *Estado {
	t.Helper()
	db := infra.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = db.Cerrar() })

	mochilaSvc := service.NewMochilaService(repository.NewMochilaRepository(db))
	categoriaSvc := service.NewCategoriaService(repository.NewCategoriaRepository(db))
	itemSvc := service.NewItemService(repository.NewItemRepository(db), categoriaSvc)

	return New(db, mochilaSvc, categoriaSvc, itemSvc, notify.NewMemoria(), 0, 0)
}

func TestInicializarCargaCategorias(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()

	assert.True(t, e.Cargando())
	require.NoError(t, e.Inicializar(ctx))
	assert.False(t, e.Cargando())
	assert.Empty(t, e.UltimoError())

	assert.Len(t, e.Categorias(), len(data.CategoriasPredefinidas))
	assert.Empty(t, e.Mochilas())
	assert.Empty(t, e.ItemsPorVencer())
	assert.Empty(t, e.ItemsVencidos())
	assert.Empty(t, e.ItemsParaRevisar())
	assert.Nil(t, e.MochilaActual())
}

func TestMutadorAntesDeInicializar(t *testing.T) {
	e := nuevoEstado(t)

	_, err := e.CrearMochila(context.Background(), dto.CrearMochilaRequest{Nombre: "Bolsa A"})
	assert.ErrorIs(t, err, infra.ErrNoDisponible)
	assert.NotEmpty(t, e.UltimoError())
}

func TestFlujoCrearSeleccionarYAgregar(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()
	require.NoError(t, e.Inicializar(ctx))

	m, err := e.CrearMochila(ctx, dto.CrearMochilaRequest{Nombre: "Bolsa A"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.FechaCreacion.IsZero())
	assert.Empty(t, m.Articulos)
	require.Len(t, e.Mochilas(), 1)

	seleccionada, err := e.SeleccionarMochila(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, seleccionada.ID)
	assert.Empty(t, seleccionada.Articulos)

	item, err := e.AgregarArticulo(ctx, "", dto.CrearItemRequest{
		Nombre:    "Agua",
		Categoria: "c-agua",
		Cantidad:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, m.ID, item.MochilaID)
	assert.True(t, item.Personalizado)

	actual := e.MochilaActual()
	require.NotNil(t, actual)
	require.Len(t, actual.Articulos, 1)
	assert.Equal(t, "Agua", actual.Articulos[0].Nombre)

	porCategoria := e.ItemsPorCategoria()
	require.Len(t, porCategoria["c-agua"], 1)
}

func TestAgregarArticuloSinSeleccion(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()
	require.NoError(t, e.Inicializar(ctx))

	_, err := e.AgregarArticulo(ctx, "", dto.CrearItemRequest{Nombre: "Agua", Categoria: "c", Cantidad: 1})
	require.Error(t, err)
	assert.Equal(t, "No hay una mochila seleccionada", e.UltimoError())
}

func TestSeleccionarMochilaInexistente(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()
	require.NoError(t, e.Inicializar(ctx))

	m, err := e.CrearMochila(ctx, dto.CrearMochilaRequest{Nombre: "Bolsa A"})
	require.NoError(t, err)
	_, err = e.SeleccionarMochila(ctx, m.ID)
	require.NoError(t, err)

	_, err = e.SeleccionarMochila(ctx, "no-existe")
	assert.ErrorIs(t, err, ErrMochilaNoEncontrada)
	assert.Nil(t, e.MochilaActual())
	assert.NotEmpty(t, e.UltimoError())
}

func TestMarcarMochilaRevisadaConservaArticulos(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()
	require.NoError(t, e.Inicializar(ctx))

	m, err := e.CrearMochila(ctx, dto.CrearMochilaRequest{Nombre: "Bolsa A"})
	require.NoError(t, err)
	_, err = e.SeleccionarMochila(ctx, m.ID)
	require.NoError(t, err)
	_, err = e.AgregarArticulo(ctx, "", dto.CrearItemRequest{Nombre: "Agua", Categoria: "c", Cantidad: 1})
	require.NoError(t, err)

	revisada, err := e.MarcarMochilaComoRevisada(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, revisada)
	require.NotNil(t, revisada.FechaUltimaRevision)

	actual := e.MochilaActual()
	require.NotNil(t, actual)
	require.NotNil(t, actual.FechaUltimaRevision)
	assert.Len(t, actual.Articulos, 1)
}

func TestEliminarMochilaLimpiaSeleccion(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()
	require.NoError(t, e.Inicializar(ctx))

	m, err := e.CrearMochila(ctx, dto.CrearMochilaRequest{Nombre: "Bolsa A"})
	require.NoError(t, err)
	_, err = e.SeleccionarMochila(ctx, m.ID)
	require.NoError(t, err)

	require.NoError(t, e.EliminarMochila(ctx, m.ID))
	assert.Empty(t, e.Mochilas())
	assert.Nil(t, e.MochilaActual())
}

func TestEliminarArticuloActualizaSeleccion(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()
	require.NoError(t, e.Inicializar(ctx))

	m, err := e.CrearMochila(ctx, dto.CrearMochilaRequest{Nombre: "Bolsa A"})
	require.NoError(t, err)
	_, err = e.SeleccionarMochila(ctx, m.ID)
	require.NoError(t, err)

	item, err := e.AgregarArticulo(ctx, "", dto.CrearItemRequest{Nombre: "Agua", Categoria: "c", Cantidad: 1})
	require.NoError(t, err)

	require.NoError(t, e.EliminarArticulo(ctx, item.ID))
	actual := e.MochilaActual()
	require.NotNil(t, actual)
	assert.Empty(t, actual.Articulos)
}

func TestCategoriasEnEstado(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()
	require.NoError(t, e.Inicializar(ctx))

	cat, err := e.CrearCategoria(ctx, dto.CrearCategoriaRequest{Nombre: "Mascotas"})
	require.NoError(t, err)
	assert.Len(t, e.Categorias(), len(data.CategoriasPredefinidas)+1)

	require.NoError(t, e.EliminarCategoria(ctx, cat.ID))
	assert.Len(t, e.Categorias(), len(data.CategoriasPredefinidas))
}

func TestInicializarEsIdempotente(t *testing.T) {
	e := nuevoEstado(t)
	ctx := context.Background()

	require.NoError(t, e.Inicializar(ctx))
	require.NoError(t, e.Inicializar(ctx))
	assert.Len(t, e.Categorias(), len(data.CategoriasPredefinidas))
}
