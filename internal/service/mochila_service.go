package service

import (
	"context"
	"time"

	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/repository"

	"github.com/google/uuid"
)

// MochilaService defines business operations for mochilas.
type MochilaService interface {
	Crear(ctx context.Context, req dto.CrearMochilaRequest) (*model.Mochila, error)
	Listar(ctx context.Context) ([]model.Mochila, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Mochila, error)
	Actualizar(ctx context.Context, m model.Mochila) (*model.Mochila, error)
	Eliminar(ctx context.Context, id string) error
	MarcarComoRevisada(ctx context.Context, id string) (*model.Mochila, error)
	ListarPorRevisar(ctx context.Context, diasLimite int) ([]model.Mochila, error)
}

type mochilaService struct {
	repo  repository.MochilaRepository
	ahora func() time.Time
}

func NewMochilaService(repo repository.MochilaRepository) MochilaService {
	return &mochilaService{repo: repo, ahora: time.Now}
}

// Crear assigns the id and fechaCreacion — never the caller — and starts the
// mochila with an empty item list.
func (s *mochilaService) Crear(ctx context.Context, req dto.CrearMochilaRequest) (*model.Mochila, error) {
	m := &model.Mochila{
		ID:            uuid.NewString(),
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Estado:        req.Estado,
		Foto:          req.Foto,
		FechaCreacion: s.ahora(),
		Articulos:     []model.Item{},
	}
	if err := s.repo.Guardar(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mochilaService) Listar(ctx context.Context) ([]model.Mochila, error) {
	return s.repo.Listar(ctx)
}

func (s *mochilaService) ObtenerPorID(ctx context.Context, id string) (*model.Mochila, error) {
	return s.repo.ObtenerPorID(ctx, id)
}

// Actualizar is a full-record replace: no diff against the stored value.
// fechaModificacion is stamped unconditionally.
func (s *mochilaService) Actualizar(ctx context.Context, m model.Mochila) (*model.Mochila, error) {
	mod := s.ahora()
	m.FechaModificacion = &mod
	if err := s.repo.Guardar(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *mochilaService) Eliminar(ctx context.Context, id string) error {
	return s.repo.Eliminar(ctx, id)
}

// MarcarComoRevisada stamps fechaUltimaRevision and fechaModificacion on the
// stored record. A missing id returns (nil, nil) — it never creates one.
func (s *mochilaService) MarcarComoRevisada(ctx context.Context, id string) (*model.Mochila, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	hoy := s.ahora()
	m.FechaUltimaRevision = &hoy
	m.FechaModificacion = &hoy
	if err := s.repo.Guardar(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListarPorRevisar returns the mochilas due for review: never reviewed is
// always due, otherwise due when the elapsed whole days since the last
// review reach diasLimite (default 30 when diasLimite <= 0).
func (s *mochilaService) ListarPorRevisar(ctx context.Context, diasLimite int) ([]model.Mochila, error) {
	if diasLimite <= 0 {
		diasLimite = DiasRevisionMochila
	}
	mochilas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	hoy := s.ahora()
	result := make([]model.Mochila, 0, len(mochilas))
	for _, m := range mochilas {
		if m.FechaUltimaRevision == nil || diasEnteros(*m.FechaUltimaRevision, hoy) >= diasLimite {
			result = append(result, m)
		}
	}
	return result, nil
}
