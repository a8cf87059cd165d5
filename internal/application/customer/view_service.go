package customer

import (
	"context"
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultRecentInteractionLimit bounds the interaction list inside the 360 view
const defaultRecentInteractionLimit = 10

// ViewService assembles the consolidated single-customer view, either by
// aggregating live records or by reading the precomputed customer_360 rows.
type ViewService struct {
	scope            customer.ViewTransactionScope
	view360Repo      customer.Customer360Repository
	logger           *zap.Logger
	now              func() time.Time
	interactionLimit int
}

// ViewServiceOption configures a ViewService
type ViewServiceOption func(*ViewService)

// WithRecentInteractionLimit overrides how many recent interactions the 360
// view carries. Non-positive values keep the default.
func WithRecentInteractionLimit(limit int) ViewServiceOption {
	return func(s *ViewService) {
		if limit > 0 {
			s.interactionLimit = limit
		}
	}
}

// NewViewService creates a new ViewService
func NewViewService(scope customer.ViewTransactionScope, view360Repo customer.Customer360Repository, logger *zap.Logger, opts ...ViewServiceOption) *ViewService {
	s := &ViewService{
		scope:            scope,
		view360Repo:      view360Repo,
		logger:           logger,
		now:              time.Now,
		interactionLimit: defaultRecentInteractionLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCustomerView360 builds the aggregated view for one customer. All reads
// run inside a single transaction so the listed records and the statistics
// describe the same snapshot.
func (s *ViewService) GetCustomerView360(ctx context.Context, customerID uuid.UUID) (*View360Response, error) {
	now := s.now()

	var view *View360Response
	err := s.scope.Execute(ctx, func(repos customer.ViewRepositories) error {
		c, err := repos.Customers.FindByID(ctx, customerID)
		if err != nil {
			return err
		}

		openCases, err := repos.Cases.FindOpenByCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		recentInteractions, err := repos.Interactions.FindRecentByCustomer(ctx, customerID, s.interactionLimit)
		if err != nil {
			return err
		}

		allCases, err := repos.Cases.FindAllByCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		allInteractions, err := repos.Interactions.FindAllByCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		stats := customer.CalculateStatistics(allCases, allInteractions, now)
		risk := customer.AssessRiskLevel(stats)
		action := customer.NextRecommendedAction(stats, c.LastInteractionAt, now)

		view = &View360Response{
			Customer:              ToCustomerResponse(c),
			OpenCases:             toCaseResponses(openCases),
			RecentInteractions:    toInteractionResponses(recentInteractions),
			Statistics:            stats,
			RiskLevel:             string(risk),
			NextRecommendedAction: action,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// GetConsolidated reads the precomputed consolidated view for one customer.
// A malformed payload degrades to an empty view and is logged, never failed.
func (s *ViewService) GetConsolidated(ctx context.Context, customerID uuid.UUID) (*customer.ConsolidatedView, error) {
	record, err := s.view360Repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.parseRecord(ctx, record), nil
}

// GetConsolidatedByExternalID reads the consolidated view by the upstream id
func (s *ViewService) GetConsolidatedByExternalID(ctx context.Context, externalID string) (*customer.ConsolidatedView, error) {
	record, err := s.view360Repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return s.parseRecord(ctx, record), nil
}

// ListConsolidated reads a page of consolidated views, optionally filtered by
// status or segment.
func (s *ViewService) ListConsolidated(ctx context.Context, status, segment string, page, pageSize int) (*shared.Paginated[customer.ConsolidatedView], error) {
	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}

	var records []customer.Customer360Record
	var err error
	switch {
	case status != "":
		records, err = s.view360Repo.FindByStatus(ctx, customer.CustomerStatus(status), f)
		f.Filters["status"] = status
	case segment != "":
		records, err = s.view360Repo.FindBySegment(ctx, segment, f)
		f.Filters["segment"] = segment
	default:
		records, err = s.view360Repo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.view360Repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	views := make([]customer.ConsolidatedView, 0, len(records))
	for i := range records {
		views = append(views, *s.parseRecord(ctx, &records[i]))
	}

	result := shared.NewPaginated(views, total, f.Page, f.PageSize)
	return &result, nil
}

func (s *ViewService) parseRecord(ctx context.Context, record *customer.Customer360Record) *customer.ConsolidatedView {
	view, err := record.View()
	if err != nil {
		// Enrich the warning with the request's correlation ids
		logger.WithLogger(ctx, s.logger).Warn("malformed consolidated payload, serving empty view",
			zap.String("customer_id", record.CustomerID.String()),
			zap.Error(err),
		)
	}
	return view
}
