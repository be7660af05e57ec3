package router

import (
	"github.com/brandkit/backend/internal/interfaces/http/handler"
)

// AdminHandlers are the handlers mounted under the admin base path
type AdminHandlers struct {
	Brand        *handler.BrandHandler
	Product      *handler.ProductHandler
	ProductBrand *handler.ProductBrandHandler
	Report       *handler.ReportHandler
	Auth         *handler.AuthHandler
}

// AdminGroups builds the admin route groups
func AdminGroups(h AdminHandlers) []RouteRegistrar {
	brands := NewDomainGroup("brands", "/brands").
		GET("", h.Brand.List).
		POST("", h.Brand.Create).
		GET("/:id", h.Brand.Get).
		PUT("/:id", h.Brand.Update).
		DELETE("/:id", h.Brand.Delete)

	products := NewDomainGroup("products", "/products").
		GET("", h.Product.List).
		POST("", h.Product.Create).
		GET("/:id", h.Product.Get).
		POST("/:id/metadata", h.Product.UpdateMetadata).
		POST("/:id/brand", h.ProductBrand.SetBrand).
		POST("/:id/dismiss/brand", h.ProductBrand.DismissBrand)

	promotions := NewDomainGroup("promotions", "/promotions").
		GET("/:id/performance", h.Report.PromotionPerformance)

	reports := NewDomainGroup("reports", "/reports").
		GET("/stats", h.Report.StoreStats)

	session := NewDomainGroup("auth", "/auth").
		POST("/logout", h.Auth.Logout)

	return []RouteRegistrar{brands, products, promotions, reports, session}
}
