package catalog

import (
	"context"
	"strings"

	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/brandkit/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ProductBrandService links products to brands
type ProductBrandService struct {
	brandRepo      catalog.BrandRepository
	productRepo    catalog.ProductRepository
	linkRepo       catalog.ProductBrandRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProductBrandService creates a new ProductBrandService
func NewProductBrandService(
	brandRepo catalog.BrandRepository,
	productRepo catalog.ProductRepository,
	linkRepo catalog.ProductBrandRepository,
	logger *zap.Logger,
) *ProductBrandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductBrandService{
		brandRepo:   brandRepo,
		productRepo: productRepo,
		linkRepo:    linkRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for link events
func (s *ProductBrandService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetBrand links the product to the brand in req.
// When the first insert fails (typically because the product already has a
// brand) the product's existing link is dismissed and the insert is retried once.
// A null brand_id clears the product's brand instead.
func (s *ProductBrandService) SetBrand(ctx context.Context, productID string, req SetProductBrandRequest) (_ *ProductBrandResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product_brand", "set", telemetry.SpanAttrProductID, productID)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if req.BrandID == nil || strings.TrimSpace(*req.BrandID) == "" {
		return s.clearBrand(ctx, productID)
	}
	brandID := strings.TrimSpace(*req.BrandID)
	telemetry.SetAttributes(span, telemetry.SpanAttrBrandID, brandID)

	if _, err := s.brandRepo.FindByID(ctx, brandID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.createLink(ctx, productID, brandID); err != nil {
		s.logger.Info("product brand link failed, dismissing existing link and retrying",
			zap.String("product_id", productID),
			zap.String("brand_id", brandID),
			zap.Error(err),
		)

		telemetry.SetAttributes(span, "link.retried", true)
		if _, dismissErr := s.linkRepo.DismissByProduct(ctx, productID); dismissErr != nil {
			s.logger.Warn("dismissing existing product brand link failed",
				zap.String("product_id", productID),
				zap.Error(dismissErr),
			)
		}

		if err := s.createLink(ctx, productID, brandID); err != nil {
			return nil, err
		}
	}

	publish(ctx, s.eventPublisher, s.logger, catalog.NewProductBrandLinkedEvent(productID, brandID))

	return &ProductBrandResponse{ProductID: productID, BrandID: &brandID}, nil
}

// DismissBrand removes the link between the product and the brand.
// Dismissing a link that does not exist succeeds.
func (s *ProductBrandService) DismissBrand(ctx context.Context, productID string, req DismissProductBrandRequest) (*DismissProductBrandResponse, error) {
	brandID := strings.TrimSpace(req.BrandID)

	removed, err := s.linkRepo.Dismiss(ctx, productID, brandID)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		publish(ctx, s.eventPublisher, s.logger, catalog.NewProductBrandDismissedEvent(productID, brandID))
	}

	return &DismissProductBrandResponse{ProductID: productID, BrandID: brandID, Dismissed: true}, nil
}

func (s *ProductBrandService) clearBrand(ctx context.Context, productID string) (*ProductBrandResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	removed, err := s.linkRepo.DismissByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		publish(ctx, s.eventPublisher, s.logger, catalog.NewProductBrandDismissedEvent(productID, ""))
	}
	return &ProductBrandResponse{ProductID: productID, BrandID: nil}, nil
}

func (s *ProductBrandService) createLink(ctx context.Context, productID, brandID string) error {
	link, err := catalog.NewProductBrand(productID, brandID)
	if err != nil {
		return err
	}
	return s.linkRepo.Create(ctx, link)
}
