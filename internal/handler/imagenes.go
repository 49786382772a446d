package handler

import (
	"net/http"

	"github.com/TenochLab/mochila-85/internal/apierror"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/imagen"

	"github.com/gin-gonic/gin"
)

type ImagenesHandler struct {
	almacen *imagen.Almacen
}

func NewImagenesHandler(almacen *imagen.Almacen) *ImagenesHandler {
	return &ImagenesHandler{almacen: almacen}
}

// Subir POST /v1/imagenes — stores a base64 payload and returns the reference.
func (h *ImagenesHandler) Subir(c *gin.Context) {
	var req dto.SubirImagenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ref, err := h.almacen.Guardar(req.Datos, req.Nombre)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"referencia": ref})
}

// Obtener GET /v1/imagenes/:nombre — resolves a reference to a data URL.
func (h *ImagenesHandler) Obtener(c *gin.Context) {
	datos, err := h.almacen.Leer(c.Param("nombre"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Imagen no encontrada"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"datos": datos})
}

// Eliminar DELETE /v1/imagenes/:nombre
func (h *ImagenesHandler) Eliminar(c *gin.Context) {
	if err := h.almacen.Eliminar(c.Param("nombre")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar la imagen"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
