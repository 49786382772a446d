package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CrearItemRequest carries the caller-supplied fields for a new item. The id
// and fechaCreacion are synthesized by the service; Personalizado and
// Predefinido are tri-state so the service can apply defaults (true / false)
// only when the caller left them unset.
type CrearItemRequest struct {
	Nombre           string     `json:"nombre"           validate:"required,min=1,max=100"`
	Categoria        string     `json:"categoria"        validate:"required"`
	Cantidad         int        `json:"cantidad"         validate:"required,min=1"`
	Descripcion      string     `json:"descripcion"      validate:"max=500"`
	Personalizado    *bool      `json:"personalizado"`
	Predefinido      *bool      `json:"predefinido"`
	FechaVencimiento *time.Time `json:"fechaVencimiento"`
	DiasParaRevisar  *int       `json:"diasParaRevisar"  validate:"omitempty,min=1"`
	Comentarios      string     `json:"comentarios"      validate:"max=1000"`
	Estado           string     `json:"estado"           validate:"omitempty,oneof=nuevo usado vencido"`
	Imagen           string     `json:"imagen"`
	MochilaID        string     `json:"mochilaId"`
}
