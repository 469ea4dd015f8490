package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kitadi/kitadi-pos/internal/application/auth"
	"github.com/kitadi/kitadi-pos/internal/application/companies"
	"github.com/kitadi/kitadi-pos/internal/application/products"
	"github.com/kitadi/kitadi-pos/internal/application/receipts"
	"github.com/kitadi/kitadi-pos/internal/application/sales"
	"github.com/kitadi/kitadi-pos/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CompanyUC *companies.UseCase
	ProductUC *products.UseCase
	SaleUC    *sales.UseCase
	ReceiptUC *receipts.UseCase
	JWTSecret string
}

// Router regista as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Lojas (público, como o onboarding exige; proteger quando houver backoffice)
	companiesGroup := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companiesGroup.Get("/", companyHandler.List)
	companiesGroup.Post("/", companyHandler.Create)
	companiesGroup.Get("/:id", companyHandler.GetByID)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos (protegido; criação só para admin)
	productsGroup := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	productsGroup.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	productsGroup.Get("/", productHandler.List)
	productsGroup.Get("/:id", productHandler.GetByID)

	// Vendas (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Recibos de uma venda (protegido)
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	salesGroup.Get("/:id/receipt/pdf", receiptHandler.DownloadPDF)
	salesGroup.Get("/:id/receipt/thermal", receiptHandler.DownloadThermal)
	salesGroup.Post("/:id/receipt/print", receiptHandler.Print)
	salesGroup.Post("/:id/receipt/share", receiptHandler.Share)

	// Perfil de recibo da loja (protegido; escrita só para admin)
	profileHandler := NewReceiptProfileHandler(deps.ReceiptUC)
	protected.Get("/receipt-profile", profileHandler.Get)
	protected.Put("/receipt-profile", RequireRole(entity.RoleAdmin), profileHandler.Put)
}
