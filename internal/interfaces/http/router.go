package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/auth"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/usecase"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC   *usecase.BranchUseCase
	BrandUC    *usecase.BrandUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *usecase.StockUseCase
	MovementUC *usecase.MovementUseCase
	AuthUC     *auth.UseCase
	Sessions   *session.Store
	LoginPath  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", WithLoginPath(deps.LoginPath))

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/:provider/callback", authHandler.ProviderCallback)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Rutas protegidas (requieren sesión activa)
	protected := api.Group("/", SessionGuard(deps.Sessions))

	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Post("/", branchHandler.Create)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Post("/", brandHandler.Create)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Put("/:id", brandHandler.Update)
	brands.Delete("/:id", brandHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Post("/", stockHandler.Create)
	stocks.Post("/bulk", stockHandler.Bulk)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Put("/:id", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)

	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Post("/drafts", movementHandler.OpenDraft)
	movements.Get("/drafts/:draftId", movementHandler.GetDraft)
	movements.Delete("/drafts/:draftId", movementHandler.CloseDraft)
	movements.Patch("/drafts/:draftId", movementHandler.SetDraftFields)
	movements.Post("/drafts/:draftId/items", movementHandler.AddDraftItem)
	movements.Put("/drafts/:draftId/items/:index", movementHandler.UpdateDraftItem)
	movements.Delete("/drafts/:draftId/items/:index", movementHandler.RemoveDraftItem)
	movements.Post("/drafts/:draftId/submit", movementHandler.SubmitDraft)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.UpdateState)
	movements.Delete("/:id", movementHandler.Delete)
}
