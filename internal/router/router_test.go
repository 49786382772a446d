package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/TenochLab/mochila-85/internal/config"
	"github.com/TenochLab/mochila-85/internal/data"
	"github.com/TenochLab/mochila-85/internal/imagen"
	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/notify"
	"github.com/TenochLab/mochila-85/internal/repository"
	"github.com/TenochLab/mochila-85/internal/service"
	"github.com/TenochLab/mochila-85/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	db := infra.NewDatabase(filepath.Join(dir, "test.db"))
	t.Cleanup(func() { _ = db.Cerrar() })

	mochilaSvc := service.NewMochilaService(repository.NewMochilaRepository(db))
	categoriaSvc := service.NewCategoriaService(repository.NewCategoriaRepository(db))
	itemSvc := service.NewItemService(repository.NewItemRepository(db), categoriaSvc)

	estado := state.New(db, mochilaSvc, categoriaSvc, itemSvc, notify.NewMemoria(), 0, 0)
	require.NoError(t, estado.Inicializar(context.Background()))

	almacen, err := imagen.NewAlmacen(filepath.Join(dir, "imagenes"))
	require.NoError(t, err)

	cfg := &config.Config{Env: "development"}
	return New(cfg, Deps{
		DB:         db,
		Estado:     estado,
		Mochilas:   mochilaSvc,
		Categorias: categoriaSvc,
		Items:      itemSvc,
		Imagenes:   almacen,
	})
}

func hacerJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := nuevoRouter(t)

	w := hacerJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "connected", resp["db"])
	assert.Equal(t, "disabled", resp["redis"])
}

func TestCrearYListarMochilas(t *testing.T) {
	r := nuevoRouter(t)

	w := hacerJSON(t, r, http.MethodPost, "/v1/mochilas", gin.H{"nombre": "Bolsa A", "estado": "nueva"})
	require.Equal(t, http.StatusCreated, w.Code)

	var creada model.Mochila
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creada))
	assert.NotEmpty(t, creada.ID)
	assert.Equal(t, "Bolsa A", creada.Nombre)

	w = hacerJSON(t, r, http.MethodGet, "/v1/mochilas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lista []model.Mochila
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	assert.Len(t, lista, 1)

	w = hacerJSON(t, r, http.MethodGet, "/v1/mochilas/"+creada.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = hacerJSON(t, r, http.MethodGet, "/v1/mochilas/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidacionDeMochila(t *testing.T) {
	r := nuevoRouter(t)

	// Missing nombre fails validation.
	w := hacerJSON(t, r, http.MethodPost, "/v1/mochilas", gin.H{"descripcion": "sin nombre"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Invalid estado value.
	w = hacerJSON(t, r, http.MethodPost, "/v1/mochilas", gin.H{"nombre": "Bolsa", "estado": "rota"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFlujoDeItems(t *testing.T) {
	r := nuevoRouter(t)

	w := hacerJSON(t, r, http.MethodPost, "/v1/mochilas", gin.H{"nombre": "Bolsa A"})
	require.Equal(t, http.StatusCreated, w.Code)
	var mochila model.Mochila
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mochila))

	w = hacerJSON(t, r, http.MethodPost, "/v1/mochilas/"+mochila.ID+"/items", gin.H{
		"nombre": "Agua", "categoria": "c-agua", "cantidad": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item model.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, mochila.ID, item.MochilaID)
	assert.True(t, item.Personalizado)

	w = hacerJSON(t, r, http.MethodGet, "/v1/mochilas/"+mochila.ID+"/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []model.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	w = hacerJSON(t, r, http.MethodPost, "/v1/items/"+item.ID+"/revisar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var revisado model.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &revisado))
	assert.NotNil(t, revisado.FechaUltimaRevision)

	w = hacerJSON(t, r, http.MethodDelete, "/v1/items/"+item.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListasEspecialesDeItems(t *testing.T) {
	r := nuevoRouter(t)

	for _, path := range []string{"/v1/items/por-vencer", "/v1/items/vencidos", "/v1/items/por-revisar", "/v1/mochilas/por-revisar"} {
		w := hacerJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCategoriasSembradas(t *testing.T) {
	r := nuevoRouter(t)

	w := hacerJSON(t, r, http.MethodGet, "/v1/categorias", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []model.Categoria
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Len(t, cats, len(data.CategoriasPredefinidas))
}

func TestEstadoSnapshot(t *testing.T) {
	r := nuevoRouter(t)

	w := hacerJSON(t, r, http.MethodGet, "/v1/estado", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, clave := range []string{"mochilas", "categorias", "itemsPorVencer", "itemsVencidos", "itemsParaRevisar", "cargando", "ultimoError"} {
		assert.Contains(t, resp, clave)
	}
}
