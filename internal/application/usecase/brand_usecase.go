package usecase

import (
	"context"
	"fmt"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/slug"
)

// BrandUseCase casos de uso CRUD para marcas. El slug se deriva del nombre al
// crear; al editar jamás se recalcula en silencio.
type BrandUseCase struct {
	res *strapi.Resource[entity.Brand]
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(res *strapi.Resource[entity.Brand]) *BrandUseCase {
	return &BrandUseCase{res: res}
}

// List lista marcas con los parámetros dados.
func (uc *BrandUseCase) List(ctx context.Context, params strapi.Params) (*strapi.Page[entity.Brand], error) {
	return uc.res.List(ctx, params)
}

// GetByID obtiene una marca por referencia.
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	return uc.res.Get(ctx, id, nil)
}

// Create crea una marca. Si no viene slug se deriva del nombre.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.BrandPayload) (*entity.Brand, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	if in.Slug == "" {
		in.Slug = slug.Make(in.Name)
	}
	return uc.res.Create(ctx, in)
}

// Update edita una marca. Un slug vacío no viaja: el existente queda intacto
// aunque el nombre cambie.
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.BrandPayload) (*entity.Brand, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	return uc.res.Update(ctx, id, in)
}

// Delete elimina una marca por referencia.
func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	return uc.res.Delete(ctx, id)
}
