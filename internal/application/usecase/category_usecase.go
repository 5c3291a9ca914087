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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	res *strapi.Resource[entity.Category]
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(res *strapi.Resource[entity.Category]) *CategoryUseCase {
	return &CategoryUseCase{res: res}
}

// List lista categorías con los parámetros dados.
func (uc *CategoryUseCase) List(ctx context.Context, params strapi.Params) (*strapi.Page[entity.Category], error) {
	return uc.res.List(ctx, params)
}

// GetByID obtiene una categoría por referencia.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return uc.res.Get(ctx, id, nil)
}

// Create crea una categoría; el slug se deriva del nombre si viene vacío.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryPayload) (*entity.Category, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	if in.Slug == "" {
		in.Slug = slug.Make(in.Name)
	}
	return uc.res.Create(ctx, in)
}

// Update edita una categoría; un slug vacío nunca pisa el existente.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryPayload) (*entity.Category, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	return uc.res.Update(ctx, id, in)
}

// Delete elimina una categoría por referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.res.Delete(ctx, id)
}
