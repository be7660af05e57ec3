package report

import (
	"context"
	"time"

	"github.com/brandkit/backend/internal/domain/partner"
	"github.com/brandkit/backend/internal/domain/report"
	"github.com/brandkit/backend/internal/domain/trade"
	"github.com/brandkit/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ReportService builds the admin dashboard reports
type ReportService struct {
	promotionRepo trade.PromotionRepository
	orderRepo     trade.OrderRepository
	customerRepo  partner.CustomerRepository
	logger        *zap.Logger
	now           func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	promotionRepo trade.PromotionRepository,
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		promotionRepo: promotionRepo,
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// SetClock overrides the clock used for monthly windows
func (s *ReportService) SetClock(now func() time.Time) {
	s.now = now
}

// GetPromotionPerformance aggregates usage, discount and order value for a promotion
func (s *ReportService) GetPromotionPerformance(ctx context.Context, promotionID string) (_ *PromotionPerformanceResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "promotion_performance", telemetry.SpanAttrPromotionID, promotionID)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	promotion, err := s.promotionRepo.FindByID(ctx, promotionID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindAll(ctx, trade.AllOrderRelations())
	if err != nil {
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrCount, len(orders))

	perf := report.CalculatePromotionPerformance(promotion, orders, s.now())
	if perf.UsageFromCounter() {
		s.logger.Info("no orders reference promotion, using its usage counter",
			zap.String("promotion_id", promotion.ID),
			zap.Int("used", promotion.Used),
		)
	}

	resp := ToPromotionPerformanceResponse(perf)
	return &resp, nil
}

// GetStoreStats returns order, revenue and customer totals plus recent orders
func (s *ReportService) GetStoreStats(ctx context.Context) (_ *StoreStatsResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "store_stats")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	orders, err := s.orderRepo.FindAll(ctx, trade.OrderRelations{Summary: true})
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := ToStoreStatsResponse(report.CalculateStoreStats(orders, customers))
	return &resp, nil
}
