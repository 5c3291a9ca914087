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

// ProductUseCase casos de uso CRUD para productos del catálogo. Un producto no
// se persiste sin marca ni sin imagen principal.
type ProductUseCase struct {
	res *strapi.Resource[entity.Product]
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(res *strapi.Resource[entity.Product]) *ProductUseCase {
	return &ProductUseCase{res: res}
}

// List lista productos con sus relaciones pobladas.
func (uc *ProductUseCase) List(ctx context.Context, params strapi.Params) (*strapi.Page[entity.Product], error) {
	return uc.res.List(ctx, params)
}

// GetByID obtiene un producto por referencia.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.res.Get(ctx, id, nil)
}

func validateProduct(in dto.ProductPayload) error {
	if in.Title == "" {
		return fmt.Errorf("título requerido: %w", domain.ErrInvalidInput)
	}
	if in.Brand == "" {
		return domain.ErrBrandRequired
	}
	if in.MainImage == "" {
		return domain.ErrMainImageRequired
	}
	return nil
}

// Create crea un producto. El slug se deriva del título si viene vacío; marca
// e imagen principal son obligatorias y se rechazan antes de emitir petición.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductPayload) (*entity.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	if in.Slug == "" {
		in.Slug = slug.Make(in.Title)
	}
	return uc.res.Create(ctx, in)
}

// Update edita un producto; mismas reglas de presencia que Create, pero un slug
// vacío no viaja y el existente queda intacto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductPayload) (*entity.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	return uc.res.Update(ctx, id, in)
}

// Delete elimina un producto por referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.res.Delete(ctx, id)
}
