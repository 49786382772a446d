package model

import "time"

// Categoria classifies items (Alimentos, Agua, Medicamentos, ...).
// ArticulosPredefinidos holds the item templates seeded for the category,
// stored denormalized inside the category record itself.
type Categoria struct {
	ID                    string     `gorm:"primaryKey" json:"id"`
	Nombre                string     `gorm:"index:idx_categorias_nombre;not null" json:"nombre"`
	Descripcion           string     `json:"descripcion,omitempty"`
	Emojis                []string   `gorm:"serializer:json" json:"emojis,omitempty"`
	FechaCreacion         time.Time  `gorm:"not null" json:"fechaCreacion"`
	FechaModificacion     *time.Time `json:"fechaModificacion,omitempty"`
	ArticulosPredefinidos []Item     `gorm:"serializer:json" json:"articulosPredefinidos,omitempty"`
}

func (Categoria) TableName() string { return "categorias" }
