package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearMochilaRequest struct {
	Nombre      string `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion" validate:"max=500"`
	Estado      string `json:"estado"      validate:"omitempty,oneof=nueva usada"`
	Foto        string `json:"foto"`
}
