package service

import (
	"context"
	"strings"
	"time"

	"github.com/TenochLab/mochila-85/internal/data"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CategoriaService defines business operations for categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error)
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Categoria, error)
	Actualizar(ctx context.Context, c model.Categoria) (*model.Categoria, error)
	Eliminar(ctx context.Context, id string) error
	InicializarPredeterminadas(ctx context.Context) error
}

type categoriaService struct {
	repo  repository.CategoriaRepository
	ahora func() time.Time
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo, ahora: time.Now}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	c := &model.Categoria{
		ID:            uuid.NewString(),
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Emojis:        req.Emojis,
		FechaCreacion: s.ahora(),
	}
	if err := s.repo.Guardar(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]model.Categoria, error) {
	return s.repo.Listar(ctx)
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id string) (*model.Categoria, error) {
	return s.repo.ObtenerPorID(ctx, id)
}

// Actualizar is a full-record replace; fechaModificacion is stamped
// unconditionally.
func (s *categoriaService) Actualizar(ctx context.Context, c model.Categoria) (*model.Categoria, error) {
	mod := s.ahora()
	c.FechaModificacion = &mod
	if err := s.repo.Guardar(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Eliminar removes the category record only. Items referencing it keep their
// categoria string — no cascade.
func (s *categoriaService) Eliminar(ctx context.Context, id string) error {
	return s.repo.Eliminar(ctx, id)
}

// InicializarPredeterminadas creates every default category whose name does
// not already exist (case-insensitive). Re-running produces no duplicates.
// Failures are logged and the remaining seeding is abandoned; the caller
// never sees the error.
func (s *categoriaService) InicializarPredeterminadas(ctx context.Context) error {
	existentes, err := s.repo.Listar(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudieron cargar las categorias existentes, se omite la siembra")
		return nil
	}

	for _, predef := range data.CategoriasPredefinidas {
		existe := false
		for _, cat := range existentes {
			if strings.EqualFold(cat.Nombre, predef.Nombre) {
				existe = true
				break
			}
		}
		if existe {
			continue
		}

		c := predef
		c.ID = uuid.NewString()
		c.FechaCreacion = s.ahora()
		if err := s.repo.Guardar(ctx, &c); err != nil {
			log.Warn().Err(err).Str("categoria", c.Nombre).Msg("error al sembrar categoria predeterminada")
			return nil
		}
	}
	return nil
}
