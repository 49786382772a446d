// Package repository implements persistence over the embedded database.
// A single generic collection type provides the CRUD primitives; entity
// repositories add the index-backed lookups each entity needs.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/TenochLab/mochila-85/internal/infra"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Coleccion is the generic record store over one named table. All operations
// are independent single-table transactions; there is no cross-table
// atomicity at this layer. Every operation fails with infra.ErrNoDisponible
// until the database open handshake completes; engine faults are wrapped and
// propagated to the caller.
type Coleccion[T any] struct {
	db     *infra.Database
	nombre string
}

// NewColeccion creates the store for one table. The table name is only used
// in error messages; the schema comes from T's GORM mapping.
func NewColeccion[T any](db *infra.Database, nombre string) *Coleccion[T] {
	return &Coleccion[T]{db: db, nombre: nombre}
}

// Listar returns every record in the collection. Order is whatever the
// engine yields (insertion order in practice, not guaranteed).
func (c *Coleccion[T]) Listar(ctx context.Context) ([]T, error) {
	gdb, err := c.db.Conn()
	if err != nil {
		return nil, err
	}
	var list []T
	if err := gdb.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("listando %s: %w", c.nombre, err)
	}
	return list, nil
}

// ObtenerPorID is a point lookup by primary key. Absence is not an error:
// a missing record returns (nil, nil).
func (c *Coleccion[T]) ObtenerPorID(ctx context.Context, id string) (*T, error) {
	gdb, err := c.db.Conn()
	if err != nil {
		return nil, err
	}
	var t T
	err = gdb.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obteniendo %s %s: %w", c.nombre, id, err)
	}
	return &t, nil
}

// Guardar upserts by primary key — create-or-replace, no separate
// insert-vs-update path. The argument is left unchanged as confirmation.
func (c *Coleccion[T]) Guardar(ctx context.Context, item *T) error {
	gdb, err := c.db.Conn()
	if err != nil {
		return err
	}
	err = gdb.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(item).Error
	if err != nil {
		return fmt.Errorf("guardando en %s: %w", c.nombre, err)
	}
	return nil
}

// Eliminar removes by primary key. Deleting a non-existent key is not an error.
func (c *Coleccion[T]) Eliminar(ctx context.Context, id string) error {
	gdb, err := c.db.Conn()
	if err != nil {
		return err
	}
	var t T
	if err := gdb.WithContext(ctx).Where("id = ?", id).Delete(&t).Error; err != nil {
		return fmt.Errorf("eliminando de %s: %w", c.nombre, err)
	}
	return nil
}
