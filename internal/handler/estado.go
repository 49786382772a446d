package handler

import (
	"net/http"

	"github.com/TenochLab/mochila-85/internal/state"

	"github.com/gin-gonic/gin"
)

type EstadoHandler struct {
	estado *state.Estado
}

func NewEstadoHandler(estado *state.Estado) *EstadoHandler {
	return &EstadoHandler{estado: estado}
}

// Obtener GET /v1/estado — the full in-memory snapshot in one response.
func (h *EstadoHandler) Obtener(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mochilas":          h.estado.Mochilas(),
		"categorias":        h.estado.Categorias(),
		"itemsPorVencer":    h.estado.ItemsPorVencer(),
		"itemsVencidos":     h.estado.ItemsVencidos(),
		"itemsParaRevisar":  h.estado.ItemsParaRevisar(),
		"mochilaActual":     h.estado.MochilaActual(),
		"itemsPorCategoria": h.estado.ItemsPorCategoria(),
		"cargando":          h.estado.Cargando(),
		"ultimoError":       h.estado.UltimoError(),
	})
}
