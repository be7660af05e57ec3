package catalog

import (
	"context"
	"strings"

	"github.com/brandkit/backend/internal/application/workflow"
	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BrandService handles brand-related business operations
type BrandService struct {
	brandRepo      catalog.BrandRepository
	productRepo    catalog.ProductRepository
	linkRepo       catalog.ProductBrandRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewBrandService creates a new BrandService
func NewBrandService(
	brandRepo catalog.BrandRepository,
	productRepo catalog.ProductRepository,
	linkRepo catalog.ProductBrandRepository,
	logger *zap.Logger,
) *BrandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrandService{
		brandRepo:   brandRepo,
		productRepo: productRepo,
		linkRepo:    linkRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for brand events
func (s *BrandService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// createBrandState is threaded through the create-brand workflow
type createBrandState struct {
	input CreateBrandRequest
	brand *catalog.Brand
}

// createBrandWorkflow builds the create-brand workflow: a single step that
// persists the brand and deletes it again if a later step fails
func (s *BrandService) createBrandWorkflow() *workflow.Workflow[createBrandState] {
	return workflow.New("create-brand", s.logger,
		workflow.Step[createBrandState]{
			Name: "create-brand-step",
			Invoke: func(ctx context.Context, st *createBrandState) error {
				brand, err := catalog.NewBrand(st.input.Name)
				if err != nil {
					return err
				}
				if err := s.brandRepo.Save(ctx, brand); err != nil {
					return err
				}
				st.brand = brand
				return nil
			},
			Compensate: func(ctx context.Context, st *createBrandState) error {
				return s.brandRepo.Delete(ctx, st.brand.ID)
			},
		},
	)
}

// Create creates a new brand through the create-brand workflow
func (s *BrandService) Create(ctx context.Context, req CreateBrandRequest) (*BrandResponse, error) {
	state := &createBrandState{input: req}
	if err := s.createBrandWorkflow().Run(ctx, state); err != nil {
		return nil, err
	}

	publishEvents(ctx, s.eventPublisher, s.logger, state.brand)

	resp := ToBrandResponse(state.brand, nil)
	return &resp, nil
}

// GetByID retrieves a brand with its products
func (s *BrandService) GetByID(ctx context.Context, id string) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productsByBrand(ctx, []string{brand.ID})
	if err != nil {
		return nil, err
	}

	resp := ToBrandResponse(brand, products[brand.ID])
	return &resp, nil
}

// List retrieves brands with their products
func (s *BrandService) List(ctx context.Context, filter BrandListFilter) (shared.Page[BrandResponse], error) {
	domainFilter := toBrandFilter(filter)

	brands, err := s.brandRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Page[BrandResponse]{}, err
	}

	count, err := s.brandRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Page[BrandResponse]{}, err
	}

	ids := make([]string, len(brands))
	for i := range brands {
		ids[i] = brands[i].ID
	}
	products, err := s.productsByBrand(ctx, ids)
	if err != nil {
		return shared.Page[BrandResponse]{}, err
	}

	items := make([]BrandResponse, len(brands))
	for i := range brands {
		items[i] = ToBrandResponse(&brands[i], products[brands[i].ID])
	}

	return shared.NewPage(items, count, domainFilter), nil
}

// Update renames a brand. The brand must exist.
func (s *BrandService) Update(ctx context.Context, id string, req UpdateBrandRequest) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := brand.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	publishEvents(ctx, s.eventPublisher, s.logger, brand)

	products, err := s.productsByBrand(ctx, []string{brand.ID})
	if err != nil {
		return nil, err
	}

	resp := ToBrandResponse(brand, products[brand.ID])
	return &resp, nil
}

// Delete soft-deletes a brand and dismisses its product links
func (s *BrandService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Links go first so a failed dismissal leaves the brand visible and retryable.
	dismissed, err := s.linkRepo.DismissByBrand(ctx, brand.ID)
	if err != nil {
		return nil, err
	}

	if err := s.brandRepo.Delete(ctx, brand.ID); err != nil {
		return nil, err
	}
	s.logger.Debug("brand deleted",
		zap.String("brand_id", brand.ID),
		zap.Int64("links_dismissed", dismissed),
	)

	brand.MarkDeleted()
	publishEvents(ctx, s.eventPublisher, s.logger, brand)

	return &DeleteResponse{ID: brand.ID, Object: "brand", Deleted: true}, nil
}

// productsByBrand loads the linked products of each brand
func (s *BrandService) productsByBrand(ctx context.Context, brandIDs []string) (map[string][]catalog.Product, error) {
	result := make(map[string][]catalog.Product, len(brandIDs))
	if len(brandIDs) == 0 {
		return result, nil
	}

	links, err := s.linkRepo.FindByBrandIDs(ctx, brandIDs)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return result, nil
	}

	productIDs := make([]string, len(links))
	for i, link := range links {
		productIDs[i] = link.ProductID
	}
	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, link := range links {
		if p, ok := byID[link.ProductID]; ok {
			result[link.BrandID] = append(result[link.BrandID], p)
		}
	}
	return result, nil
}

func toBrandFilter(filter BrandListFilter) shared.Filter {
	f := shared.DefaultFilter()
	f.Search = strings.TrimSpace(filter.Q)
	f.Limit = filter.Limit
	f.Offset = filter.Offset
	if filter.Order != "" {
		f.OrderBy = strings.TrimPrefix(filter.Order, "-")
		f.OrderDir = "asc"
		if strings.HasPrefix(filter.Order, "-") {
			f.OrderDir = "desc"
		}
	}
	return f.Normalize()
}
