package service

import (
	"context"
	"testing"
	"time"

	"github.com/TenochLab/mochila-85/internal/data"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoCategoriaService(t *testing.T) *categoriaService {
	t.Helper()
	svc := NewCategoriaService(repository.NewCategoriaRepository(nuevaDB(t))).(*categoriaService)
	svc.ahora = func() time.Time { return hoyFijo }
	return svc
}

func TestCrearCategoria(t *testing.T) {
	svc := nuevoCategoriaService(t)

	cat, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{
		Nombre: "Mascotas",
		Emojis: []string{"🐕"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
	assert.True(t, cat.FechaCreacion.Equal(hoyFijo))

	leida, err := svc.ObtenerPorID(context.Background(), cat.ID)
	require.NoError(t, err)
	require.NotNil(t, leida)
	assert.Equal(t, []string{"🐕"}, leida.Emojis)
}

func TestInicializarPredeterminadas(t *testing.T) {
	svc := nuevoCategoriaService(t)
	ctx := context.Background()

	require.NoError(t, svc.InicializarPredeterminadas(ctx))

	cats, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(data.CategoriasPredefinidas))

	// Re-running creates no duplicates.
	require.NoError(t, svc.InicializarPredeterminadas(ctx))
	cats, err = svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(data.CategoriasPredefinidas))
}

func TestInicializarPredeterminadasIgnoraMayusculas(t *testing.T) {
	svc := nuevoCategoriaService(t)
	ctx := context.Background()

	// A pre-existing category whose name differs only in case blocks the
	// seed for that name.
	_, err := svc.Crear(ctx, dto.CrearCategoriaRequest{Nombre: "ALIMENTOS"})
	require.NoError(t, err)

	require.NoError(t, svc.InicializarPredeterminadas(ctx))

	cats, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(data.CategoriasPredefinidas))

	conteo := 0
	for _, c := range cats {
		if c.Nombre == "ALIMENTOS" || c.Nombre == "Alimentos" {
			conteo++
		}
	}
	assert.Equal(t, 1, conteo)
}
