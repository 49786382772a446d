package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TenochLab/mochila-85/internal/apierror"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/service"
	"github.com/TenochLab/mochila-85/internal/state"

	"github.com/gin-gonic/gin"
)

type MochilasHandler struct {
	estado *state.Estado
	svc    service.MochilaService
}

func NewMochilasHandler(estado *state.Estado, svc service.MochilaService) *MochilasHandler {
	return &MochilasHandler{estado: estado, svc: svc}
}

// Crear POST /v1/mochilas
func (h *MochilasHandler) Crear(c *gin.Context) {
	var req dto.CrearMochilaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.estado.CrearMochila(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear la mochila"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/mochilas
func (h *MochilasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar mochilas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/mochilas/:id
func (h *MochilasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar la mochila"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Mochila no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/mochilas/:id — full-record replace.
func (h *MochilasHandler) Actualizar(c *gin.Context) {
	var m model.Mochila
	if !bindAndValidate(c, &m) {
		return
	}
	m.ID = c.Param("id")
	resp, err := h.estado.ActualizarMochila(c.Request.Context(), m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar la mochila"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/mochilas/:id
func (h *MochilasHandler) Eliminar(c *gin.Context) {
	if err := h.estado.EliminarMochila(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar la mochila"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Revisar POST /v1/mochilas/:id/revisar
func (h *MochilasHandler) Revisar(c *gin.Context) {
	resp, err := h.estado.MarcarMochilaComoRevisada(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al marcar la mochila como revisada"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Mochila no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Seleccionar POST /v1/mochilas/:id/seleccionar
func (h *MochilasHandler) Seleccionar(c *gin.Context) {
	resp, err := h.estado.SeleccionarMochila(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, state.ErrMochilaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New("Mochila no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al seleccionar la mochila"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorRevisar GET /v1/mochilas/por-revisar?dias=N
func (h *MochilasHandler) PorRevisar(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "0"))
	resp, err := h.svc.ListarPorRevisar(c.Request.Context(), dias)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar mochilas por revisar"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
