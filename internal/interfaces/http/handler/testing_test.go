package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/brandkit/backend/internal/application/catalog"
	reportapp "github.com/brandkit/backend/internal/application/report"
	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/infrastructure/persistence"
	"github.com/brandkit/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testEnv runs the real services on a private in-memory sqlite database
type testEnv struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine

	brands     *persistence.GormBrandRepository
	products   *persistence.GormProductRepository
	links      *persistence.GormProductBrandRepository
	promotions *persistence.GormPromotionRepository
	orders     *persistence.GormOrderRepository
	customers  *persistence.GormCustomerRepository

	reportService *reportapp.ReportService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, persistence.AutoMigrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	env := &testEnv{
		t:          t,
		db:         db,
		brands:     persistence.NewGormBrandRepository(db),
		products:   persistence.NewGormProductRepository(db),
		links:      persistence.NewGormProductBrandRepository(db),
		promotions: persistence.NewGormPromotionRepository(db),
		orders:     persistence.NewGormOrderRepository(db),
		customers:  persistence.NewGormCustomerRepository(db),
	}
	env.reportService = reportapp.NewReportService(env.promotions, env.orders, env.customers, nil)

	brandHandler := NewBrandHandler(catalogapp.NewBrandService(env.brands, env.products, env.links, nil))
	productHandler := NewProductHandler(catalogapp.NewProductService(env.products, env.brands, env.links, nil))
	linkHandler := NewProductBrandHandler(catalogapp.NewProductBrandService(env.brands, env.products, env.links, nil))
	reportHandler := NewReportHandler(env.reportService)

	r := gin.New()
	r.Use(middleware.RequestID())
	admin := r.Group("/admin")
	admin.GET("/brands", brandHandler.List)
	admin.POST("/brands", brandHandler.Create)
	admin.GET("/brands/:id", brandHandler.Get)
	admin.PUT("/brands/:id", brandHandler.Update)
	admin.DELETE("/brands/:id", brandHandler.Delete)
	admin.GET("/products", productHandler.List)
	admin.POST("/products", productHandler.Create)
	admin.GET("/products/:id", productHandler.Get)
	admin.POST("/products/:id/metadata", productHandler.UpdateMetadata)
	admin.POST("/products/:id/brand", linkHandler.SetBrand)
	admin.POST("/products/:id/dismiss/brand", linkHandler.DismissBrand)
	admin.GET("/promotions/:id/performance", reportHandler.PromotionPerformance)
	admin.GET("/reports/stats", reportHandler.StoreStats)
	env.router = r
	return env
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedBrand(name string) *catalog.Brand {
	e.t.Helper()
	brand, err := catalog.NewBrand(name)
	require.NoError(e.t, err)
	require.NoError(e.t, e.brands.Save(context.Background(), brand))
	return brand
}

func (e *testEnv) seedProduct(title string) *catalog.Product {
	e.t.Helper()
	product, err := catalog.NewProduct(catalog.NewProductInput{Title: title})
	require.NoError(e.t, err)
	require.NoError(e.t, e.products.Save(context.Background(), product))
	return product
}

func (e *testEnv) seedLink(productID, brandID string) {
	e.t.Helper()
	link, err := catalog.NewProductBrand(productID, brandID)
	require.NoError(e.t, err)
	require.NoError(e.t, e.links.Create(context.Background(), link))
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}

