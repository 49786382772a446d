package handler

import (
	"net/http"

	"github.com/TenochLab/mochila-85/internal/apierror"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/service"
	"github.com/TenochLab/mochila-85/internal/state"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct {
	estado *state.Estado
	svc    service.CategoriaService
}

func NewCategoriasHandler(estado *state.Estado, svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{estado: estado, svc: svc}
}

// Crear POST /v1/categorias
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.estado.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear la categoría"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/categorias
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorías"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/categorias/:id
func (h *CategoriasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar la categoría"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Categoría no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/categorias/:id — full-record replace.
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	var cat model.Categoria
	if !bindAndValidate(c, &cat) {
		return
	}
	cat.ID = c.Param("id")
	resp, err := h.estado.ActualizarCategoria(c.Request.Context(), cat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar la categoría"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/categorias/:id
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	if err := h.estado.EliminarCategoria(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar la categoría"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Inicializar POST /v1/categorias/inicializar — seeds the default categories.
// Idempotent; always responds with the resulting list.
func (h *CategoriasHandler) Inicializar(c *gin.Context) {
	h.estado.SembrarCategoriasPredeterminadas(c.Request.Context())
	c.JSON(http.StatusOK, h.estado.Categorias())
}

// SembrarArticulos POST /v1/categorias/:id/articulos-predefinidos — stores
// the predefined item templates for the category.
func (h *CategoriasHandler) SembrarArticulos(c *gin.Context) {
	h.estado.SembrarArticulosPredefinidos(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, h.estado.Categorias())
}
