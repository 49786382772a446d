package repository

import (
	"context"

	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/model"
)

// MochilaRepository defines CRUD operations for Mochila.
type MochilaRepository interface {
	Listar(ctx context.Context) ([]model.Mochila, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Mochila, error)
	Guardar(ctx context.Context, m *model.Mochila) error
	Eliminar(ctx context.Context, id string) error
}

type mochilaRepository struct {
	*Coleccion[model.Mochila]
}

func NewMochilaRepository(db *infra.Database) MochilaRepository {
	return &mochilaRepository{NewColeccion[model.Mochila](db, "mochilas")}
}
