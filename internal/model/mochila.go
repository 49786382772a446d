package model

import "time"

// Estados posibles de una mochila.
const (
	MochilaNueva = "nueva"
	MochilaUsada = "usada"
)

// Mochila represents an emergency go-bag and its tracked contents.
// Articulos is hydrated at read time by joining items on mochila_id;
// it is never the persisted source of truth for items.
type Mochila struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	Nombre              string     `gorm:"index:idx_mochilas_nombre;not null" json:"nombre"`
	Descripcion         string     `json:"descripcion,omitempty"`
	FechaCreacion       time.Time  `gorm:"not null" json:"fechaCreacion"`
	FechaModificacion   *time.Time `json:"fechaModificacion,omitempty"`
	FechaUltimaRevision *time.Time `gorm:"index:idx_mochilas_fecha_revision" json:"fechaUltimaRevision,omitempty"`
	Articulos           []Item     `gorm:"-" json:"articulos"`
	Estado              string     `json:"estado,omitempty"`
	Foto                string     `json:"foto,omitempty"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Mochila) TableName() string { return "mochilas" }
