package catalog

import (
	"context"
	"strings"

	"github.com/brandkit/backend/internal/application/workflow"
	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product creation, lookup and metadata edits
type ProductService struct {
	productRepo    catalog.ProductRepository
	brandRepo      catalog.BrandRepository
	linkRepo       catalog.ProductBrandRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	brandRepo catalog.BrandRepository,
	linkRepo catalog.ProductBrandRepository,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		linkRepo:    linkRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for product events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// createProductsState is threaded through the create-products workflow
type createProductsState struct {
	input    CreateProductsRequest
	products []*catalog.Product
	brand    *catalog.Brand
	links    []*catalog.ProductBrand
}

// createProductsWorkflow creates the products, then runs the products-created
// hook that links them to the brand named in additional_data
func (s *ProductService) createProductsWorkflow() *workflow.Workflow[createProductsState] {
	return workflow.New("create-products", s.logger,
		workflow.Step[createProductsState]{
			Name: "create-products",
			Invoke: func(ctx context.Context, st *createProductsState) error {
				products := make([]*catalog.Product, 0, len(st.input.Products))
				for _, in := range st.input.Products {
					product, err := catalog.NewProduct(catalog.NewProductInput{
						Title:       in.Title,
						Handle:      in.Handle,
						Subtitle:    in.Subtitle,
						Description: in.Description,
						Status:      catalog.ProductStatus(in.Status),
						Metadata:    in.Metadata,
					})
					if err != nil {
						return err
					}
					products = append(products, product)
				}
				if err := s.productRepo.SaveBatch(ctx, products); err != nil {
					return err
				}
				st.products = products
				return nil
			},
			Compensate: func(ctx context.Context, st *createProductsState) error {
				ids := make([]string, len(st.products))
				for i, p := range st.products {
					ids[i] = p.ID
				}
				return s.productRepo.DeleteByIDs(ctx, ids)
			},
		},
		workflow.Step[createProductsState]{
			Name:       "products-created",
			Invoke:     s.linkCreatedProducts,
			Compensate: s.dismissCreatedLinks,
		},
	)
}

// linkCreatedProducts links every created product to additional_data.brand_id.
// Without a brand id it does nothing.
func (s *ProductService) linkCreatedProducts(ctx context.Context, st *createProductsState) error {
	brandID := strings.TrimSpace(st.input.BrandIDFromAdditionalData())
	if brandID == "" {
		return nil
	}

	brand, err := s.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		return err
	}

	links := make([]*catalog.ProductBrand, 0, len(st.products))
	for _, p := range st.products {
		link, err := catalog.NewProductBrand(p.ID, brand.ID)
		if err != nil {
			return err
		}
		links = append(links, link)
	}
	if err := s.linkRepo.Create(ctx, links...); err != nil {
		return err
	}

	st.brand = brand
	st.links = links
	s.logger.Info("Linked brand to products",
		zap.String("brand_id", brand.ID),
		zap.Int("product_count", len(links)),
	)
	return nil
}

func (s *ProductService) dismissCreatedLinks(ctx context.Context, st *createProductsState) error {
	for _, link := range st.links {
		if _, err := s.linkRepo.Dismiss(ctx, link.ProductID, link.BrandID); err != nil {
			return err
		}
	}
	return nil
}

// Create creates products and links them to the brand in additional_data, if any.
// A failed brand link rolls back the created products.
func (s *ProductService) Create(ctx context.Context, req CreateProductsRequest) ([]ProductWithBrandResponse, error) {
	state := &createProductsState{input: req}
	if err := s.createProductsWorkflow().Run(ctx, state); err != nil {
		return nil, err
	}

	aggregates := make([]shared.EventSource, len(state.products))
	for i, p := range state.products {
		aggregates[i] = p
	}
	publishEvents(ctx, s.eventPublisher, s.logger, aggregates...)
	for _, link := range state.links {
		publish(ctx, s.eventPublisher, s.logger, catalog.NewProductBrandLinkedEvent(link.ProductID, link.BrandID))
	}

	result := make([]ProductWithBrandResponse, len(state.products))
	for i, p := range state.products {
		result[i] = ToProductWithBrandResponse(p, state.brand)
	}
	return result, nil
}

// GetByID retrieves a product with its brand
func (s *ProductService) GetByID(ctx context.Context, id string) (*ProductWithBrandResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	brands, err := s.brandsByProduct(ctx, []string{product.ID})
	if err != nil {
		return nil, err
	}

	resp := ToProductWithBrandResponse(product, brands[product.ID])
	return &resp, nil
}

// List retrieves products with their brands
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (shared.Page[ProductWithBrandResponse], error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = strings.TrimSpace(filter.Q)
	domainFilter.Limit = filter.Limit
	domainFilter.Offset = filter.Offset
	if filter.BrandID != "" {
		domainFilter.Filters["brand_id"] = filter.BrandID
	}
	domainFilter = domainFilter.Normalize()

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Page[ProductWithBrandResponse]{}, err
	}
	count, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Page[ProductWithBrandResponse]{}, err
	}

	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	brands, err := s.brandsByProduct(ctx, ids)
	if err != nil {
		return shared.Page[ProductWithBrandResponse]{}, err
	}

	items := make([]ProductWithBrandResponse, len(products))
	for i := range products {
		items[i] = ToProductWithBrandResponse(&products[i], brands[products[i].ID])
	}
	return shared.NewPage(items, count, domainFilter), nil
}

// UpdateMetadata merges metadata into the product; null values remove keys
func (s *ProductService) UpdateMetadata(ctx context.Context, id string, req UpdateProductMetadataRequest) (*ProductWithBrandResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.MergeMetadata(req.Metadata)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	publishEvents(ctx, s.eventPublisher, s.logger, product)

	brands, err := s.brandsByProduct(ctx, []string{product.ID})
	if err != nil {
		return nil, err
	}
	resp := ToProductWithBrandResponse(product, brands[product.ID])
	return &resp, nil
}

// brandsByProduct loads the brand of each product, skipping unbranded products
func (s *ProductService) brandsByProduct(ctx context.Context, productIDs []string) (map[string]*catalog.Brand, error) {
	result := make(map[string]*catalog.Brand, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	links, err := s.linkRepo.FindByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return result, nil
	}

	brandIDs := make([]string, 0, len(links))
	for _, link := range links {
		brandIDs = append(brandIDs, link.BrandID)
	}
	brands, err := s.brandRepo.FindByIDs(ctx, brandIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*catalog.Brand, len(brands))
	for i := range brands {
		byID[brands[i].ID] = &brands[i]
	}
	for _, link := range links {
		if b, ok := byID[link.BrandID]; ok {
			result[link.ProductID] = b
		}
	}
	return result, nil
}
