package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// SubirImagenRequest carries a base64 image payload, with or without the
// data-URL prefix. Nombre is optional; one is generated when empty.
type SubirImagenRequest struct {
	Datos  string `json:"datos"  validate:"required"`
	Nombre string `json:"nombre" validate:"omitempty,max=200"`
}
