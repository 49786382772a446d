package model

import "time"

// Estados posibles de un artículo.
const (
	ItemNuevo   = "nuevo"
	ItemUsado   = "usado"
	ItemVencido = "vencido"
)

// Item is a single trackable supply unit, optionally expiring, optionally on
// a periodic review schedule, optionally owned by a mochila. Categoria and
// MochilaID are plain string references; there is no referential integrity
// and no cascade on delete.
type Item struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	Nombre              string     `gorm:"not null" json:"nombre"`
	Categoria           string     `gorm:"index:idx_items_categoria;not null" json:"categoria"`
	Cantidad            int        `gorm:"not null" json:"cantidad"`
	Descripcion         string     `json:"descripcion,omitempty"`
	Personalizado       bool       `json:"personalizado"`
	Predefinido         bool       `json:"predefinido"`
	FechaCreacion       time.Time  `gorm:"not null" json:"fechaCreacion"`
	FechaModificacion   *time.Time `json:"fechaModificacion,omitempty"`
	FechaUltimaRevision *time.Time `json:"fechaUltimaRevision,omitempty"`
	FechaVencimiento    *time.Time `gorm:"index:idx_items_fecha_vencimiento" json:"fechaVencimiento,omitempty"`
	DiasParaRevisar     *int       `json:"diasParaRevisar,omitempty"`
	Comentarios         string     `json:"comentarios,omitempty"`
	Estado              string     `json:"estado,omitempty"`
	Imagen              string     `json:"imagen,omitempty"`
	MochilaID           string     `gorm:"index:idx_items_mochila" json:"mochilaId,omitempty"`
}

func (Item) TableName() string { return "items" }
