package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/partner"
	"github.com/brandkit/backend/internal/domain/trade"
	"github.com/brandkit/backend/internal/infrastructure/auth"
	"github.com/brandkit/backend/internal/infrastructure/config"
	"github.com/brandkit/backend/internal/infrastructure/logger"
	"github.com/brandkit/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type seedBrand struct {
	name     string
	products []string
}

var demoBrands = []seedBrand{
	{name: "Northwind", products: []string{"Trail Jacket", "Summit Backpack"}},
	{name: "Lumen", products: []string{"Desk Lamp", "Reading Light"}},
	{name: "Harbor & Co", products: []string{"Canvas Tote"}},
}

var demoCustomers = [][3]string{
	{"ada@example.com", "Ada", "Lovelace"},
	{"grace@example.com", "Grace", "Hopper"},
	{"alan@example.com", "Alan", "Turing"},
}

const demoPromotionCode = "WELCOME10"

func main() {
	var (
		adminID    string
		adminEmail string
	)
	flag.StringVar(&adminID, "admin-id", "user_dev_admin", "Actor id of the printed admin token")
	flag.StringVar(&adminEmail, "admin-email", "admin@example.com", "Email of the printed admin token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, logger.NewGormLogger(log, logger.MapGormLogLevel("warn")))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()
	if cfg.Database.Driver == "sqlite" {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Failed to migrate sqlite schema", zap.Error(err))
		}
	}

	ctx := context.Background()
	s := &seeder{
		brands:     persistence.NewGormBrandRepository(db.DB),
		products:   persistence.NewGormProductRepository(db.DB),
		links:      persistence.NewGormProductBrandRepository(db.DB),
		customers:  persistence.NewGormCustomerRepository(db.DB),
		promotions: persistence.NewGormPromotionRepository(db.DB),
		orders:     persistence.NewGormOrderRepository(db.DB),
		log:        log,
		now:        time.Now(),
	}
	if err := s.run(ctx); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	token, err := auth.NewJWTService(cfg.JWT).GenerateAdminToken(adminID, adminEmail)
	if err != nil {
		log.Fatal("Failed to issue admin token", zap.Error(err))
	}
	log.Info("Seed completed", zap.Time("token_expires_at", token.ExpiresAt))
	fmt.Printf("\nAdmin token for %s:\n\n  Authorization: Bearer %s\n\n", adminEmail, token.Token)
}

type seeder struct {
	brands     *persistence.GormBrandRepository
	products   *persistence.GormProductRepository
	links      *persistence.GormProductBrandRepository
	customers  *persistence.GormCustomerRepository
	promotions *persistence.GormPromotionRepository
	orders     *persistence.GormOrderRepository
	log        *zap.Logger
	now        time.Time
}

func (s *seeder) run(ctx context.Context) error {
	if err := s.seedCatalog(ctx); err != nil {
		return err
	}
	customers, err := s.seedCustomers(ctx)
	if err != nil {
		return err
	}
	promotion, err := trade.NewPromotion(demoPromotionCode)
	if err != nil {
		return err
	}
	promotion.Activate()
	if err := s.promotions.Save(ctx, promotion); err != nil {
		return fmt.Errorf("save promotion: %w", err)
	}
	return s.seedOrders(ctx, customers, promotion)
}

func (s *seeder) seedCatalog(ctx context.Context) error {
	for _, sb := range demoBrands {
		brand, err := catalog.NewBrand(sb.name)
		if err != nil {
			return err
		}
		if err := s.brands.Save(ctx, brand); err != nil {
			return fmt.Errorf("save brand %q: %w", sb.name, err)
		}

		products := make([]*catalog.Product, 0, len(sb.products))
		for _, title := range sb.products {
			p, err := catalog.NewProduct(catalog.NewProductInput{
				Title:  title,
				Status: catalog.ProductStatusPublished,
			})
			if err != nil {
				return err
			}
			products = append(products, p)
		}
		if err := s.products.SaveBatch(ctx, products); err != nil {
			return fmt.Errorf("save products of %q: %w", sb.name, err)
		}

		links := make([]*catalog.ProductBrand, 0, len(products))
		for _, p := range products {
			link, err := catalog.NewProductBrand(p.ID, brand.ID)
			if err != nil {
				return err
			}
			links = append(links, link)
		}
		if err := s.links.Create(ctx, links...); err != nil {
			return fmt.Errorf("link products of %q: %w", sb.name, err)
		}
		s.log.Info("Seeded brand", zap.String("brand_id", brand.ID), zap.Int("products", len(products)))
	}
	return nil
}

func (s *seeder) seedCustomers(ctx context.Context) ([]*partner.Customer, error) {
	customers := make([]*partner.Customer, 0, len(demoCustomers))
	for _, c := range demoCustomers {
		customer, err := partner.NewCustomer(c[0], c[1], c[2])
		if err != nil {
			return nil, err
		}
		if err := s.customers.Save(ctx, customer); err != nil {
			return nil, fmt.Errorf("save customer %q: %w", c[0], err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// seedOrders spreads orders over this month and last month; every other
// order redeems the demo promotion.
func (s *seeder) seedOrders(ctx context.Context, customers []*partner.Customer, promotion *trade.Promotion) error {
	thisMonth := time.Date(s.now.Year(), s.now.Month(), 1, 12, 0, 0, 0, s.now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	for i := 0; i < 8; i++ {
		createdAt := lastMonth.AddDate(0, 0, i*3)
		if i%2 == 1 {
			createdAt = thisMonth.Add(time.Duration(i) * time.Hour)
		}
		if createdAt.After(s.now) {
			createdAt = s.now
		}
		total := decimal.NewFromInt(int64(40 + i*15))
		status := trade.OrderStatusCompleted
		if i == 7 {
			status = trade.OrderStatusPending
		}

		order := trade.NewOrder(trade.NewOrderInput{
			DisplayID:     1001 + i,
			Email:         customers[i%len(customers)].Email,
			Status:        status,
			CurrencyCode:  "eur",
			OriginalTotal: decimal.NewNullDecimal(total),
			Totals: map[string]interface{}{
				trade.SummaryCurrentOrderTotal: total.String(),
				trade.SummaryPaidTotal:         total.InexactFloat64(),
			},
			CreatedAt: createdAt,
		})
		if i%2 == 0 {
			order.AddAdjustment(promotion.ID, promotion.Code, decimal.NewFromInt(5))
			order.ApplyPromotion(promotion.ID)
			promotion.RecordUsage()
		}
		if err := s.orders.Save(ctx, order); err != nil {
			return fmt.Errorf("save order %d: %w", order.DisplayID, err)
		}
	}

	if err := s.promotions.Save(ctx, promotion); err != nil {
		return fmt.Errorf("update promotion usage: %w", err)
	}
	s.log.Info("Seeded orders", zap.String("promotion_code", promotion.Code), zap.Int("promotion_used", promotion.Used))
	return nil
}
