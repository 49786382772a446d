package handler

import (
	"net/http"
	"strconv"

	"github.com/TenochLab/mochila-85/internal/apierror"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/service"
	"github.com/TenochLab/mochila-85/internal/state"

	"github.com/gin-gonic/gin"
)

type ItemsHandler struct {
	estado *state.Estado
	svc    service.ItemService
}

func NewItemsHandler(estado *state.Estado, svc service.ItemService) *ItemsHandler {
	return &ItemsHandler{estado: estado, svc: svc}
}

// CrearEnMochila POST /v1/mochilas/:id/items
func (h *ItemsHandler) CrearEnMochila(c *gin.Context) {
	var req dto.CrearItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.estado.AgregarArticulo(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al agregar el artículo"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Crear POST /v1/items — adds to the currently selected mochila.
func (h *ItemsHandler) Crear(c *gin.Context) {
	var req dto.CrearItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.estado.AgregarArticulo(c.Request.Context(), req.MochilaID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/items
func (h *ItemsHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar artículos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/items/:id
func (h *ItemsHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar el artículo"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Artículo no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/items/:id — full-record replace.
func (h *ItemsHandler) Actualizar(c *gin.Context) {
	var i model.Item
	if !bindAndValidate(c, &i) {
		return
	}
	i.ID = c.Param("id")
	resp, err := h.estado.ActualizarArticulo(c.Request.Context(), i)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el artículo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/items/:id
func (h *ItemsHandler) Eliminar(c *gin.Context) {
	if err := h.estado.EliminarArticulo(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar el artículo"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Revisar POST /v1/items/:id/revisar
func (h *ItemsHandler) Revisar(c *gin.Context) {
	resp, err := h.estado.MarcarArticuloComoRevisado(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al marcar el artículo como revisado"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Artículo no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorMochila GET /v1/mochilas/:id/items
func (h *ItemsHandler) ListarPorMochila(c *gin.Context) {
	resp, err := h.svc.ListarPorMochila(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar artículos de la mochila"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorCategoria GET /v1/categorias/:id/items
func (h *ItemsHandler) ListarPorCategoria(c *gin.Context) {
	resp, err := h.svc.ListarPorCategoria(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar artículos por categoría"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorVencer GET /v1/items/por-vencer?dias=N
func (h *ItemsHandler) PorVencer(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "0"))
	resp, err := h.svc.ListarPorVencer(c.Request.Context(), dias)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar artículos por vencer"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Vencidos GET /v1/items/vencidos
func (h *ItemsHandler) Vencidos(c *gin.Context) {
	resp, err := h.svc.ListarVencidos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar artículos vencidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ParaRevisar GET /v1/items/por-revisar
func (h *ItemsHandler) ParaRevisar(c *gin.Context) {
	resp, err := h.svc.ListarParaRevisar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar artículos por revisar"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
