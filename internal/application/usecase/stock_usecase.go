package usecase

import (
	"context"
	"fmt"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/stock"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// StockUseCase casos de uso de stock: CRUD por registro y carga masiva por
// sucursal contra el endpoint batch del content API.
type StockUseCase struct {
	res    *strapi.Resource[entity.Stock]
	client *strapi.Client
	log    *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(res *strapi.Resource[entity.Stock], client *strapi.Client, log *logger.Logger) *StockUseCase {
	return &StockUseCase{res: res, client: client, log: log}
}

// List lista registros de stock con sucursal y producto poblados.
func (uc *StockUseCase) List(ctx context.Context, params strapi.Params) (*strapi.Page[entity.Stock], error) {
	return uc.res.List(ctx, params)
}

// GetByID obtiene un registro de stock por referencia.
func (uc *StockUseCase) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	return uc.res.Get(ctx, id, nil)
}

// Create crea un registro de stock individual.
func (uc *StockUseCase) Create(ctx context.Context, in dto.StockPayload) (*entity.Stock, error) {
	if in.Product == "" {
		return nil, fmt.Errorf("producto requerido: %w", domain.ErrInvalidInput)
	}
	if in.Branch == "" {
		return nil, domain.ErrBranchRequired
	}
	return uc.res.Create(ctx, in)
}

// Update edita un registro de stock individual.
func (uc *StockUseCase) Update(ctx context.Context, id string, in dto.StockPayload) (*entity.Stock, error) {
	return uc.res.Update(ctx, id, in)
}

// Delete elimina un registro de stock por referencia.
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	return uc.res.Delete(ctx, id)
}

// BulkCreate valida el borrador masivo y lo envía en UNA sola petición batch.
// Si la validación falla no se emite petición alguna; si el backend falla, el
// borrador del llamador sigue intacto para corregir y reintentar.
func (uc *StockUseCase) BulkCreate(ctx context.Context, in dto.BulkStockRequest) error {
	draft := stock.BulkDraft{BranchID: in.BranchID, Rows: in.Rows}
	payload, err := draft.Payload()
	if err != nil {
		return err
	}
	if err := uc.client.Post(ctx, "/stocks/bulk-update", payload, nil); err != nil {
		return err
	}
	uc.log.Info().Str("branch", in.BranchID).Int("products", len(payload.Products)).Msg("carga masiva de stock aplicada")
	uc.res.Invalidate(ctx)
	return nil
}
