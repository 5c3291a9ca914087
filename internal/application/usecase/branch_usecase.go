package usecase

import (
	"context"
	"fmt"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
)

// BranchUseCase casos de uso CRUD para sucursales (locales y depósitos).
type BranchUseCase struct {
	res *strapi.Resource[entity.Branch]
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(res *strapi.Resource[entity.Branch]) *BranchUseCase {
	return &BranchUseCase{res: res}
}

// List lista sucursales con los parámetros dados.
func (uc *BranchUseCase) List(ctx context.Context, params strapi.Params) (*strapi.Page[entity.Branch], error) {
	return uc.res.List(ctx, params)
}

// GetByID obtiene una sucursal por referencia.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	return uc.res.Get(ctx, id, nil)
}

// Create crea una sucursal. El tipo debe ser local o deposit.
func (uc *BranchUseCase) Create(ctx context.Context, in dto.BranchPayload) (*entity.Branch, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	if !entity.ValidBranchType(in.Type) {
		return nil, fmt.Errorf("tipo de sucursal %q: %w", in.Type, domain.ErrInvalidInput)
	}
	return uc.res.Create(ctx, in)
}

// Update edita una sucursal existente.
func (uc *BranchUseCase) Update(ctx context.Context, id string, in dto.BranchPayload) (*entity.Branch, error) {
	if in.Type != "" && !entity.ValidBranchType(in.Type) {
		return nil, fmt.Errorf("tipo de sucursal %q: %w", in.Type, domain.ErrInvalidInput)
	}
	return uc.res.Update(ctx, id, in)
}

// Delete elimina una sucursal por referencia.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	return uc.res.Delete(ctx, id)
}
