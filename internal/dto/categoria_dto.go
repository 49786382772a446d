package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string   `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion string   `json:"descripcion" validate:"max=500"`
	Emojis      []string `json:"emojis"      validate:"max=10"`
}
