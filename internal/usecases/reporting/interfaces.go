package reporting

import (
	"github.com/akozyrev/basket-analytics-api/internal/domain"
)

// BasketReporter exposes the per-window basket KPI reports
type BasketReporter interface {
	// GetBasketSummary computes the aggregate basket KPIs for one window
	GetBasketSummary(period domain.DateRange, channel domain.SalesChannel) (*domain.BasketSummary, error)

	// GetBasketDistribution buckets orders by distinct item count
	GetBasketDistribution(period domain.DateRange, channel domain.SalesChannel) ([]*domain.BasketBucket, error)
}

// AffinityReporter exposes the pairwise co-occurrence reports
type AffinityReporter interface {
	// GetProductAffinity ranks co-purchased product pairs with
	// support/confidence/lift; anchorProductID of zero disables the filter
	GetProductAffinity(period domain.DateRange, channel domain.SalesChannel, limit int, anchorProductID int64) ([]*domain.ProductPair, error)

	// GetCategoryAffinity ranks co-occurring category pairs after parent rollup
	GetCategoryAffinity(period domain.DateRange, channel domain.SalesChannel, limit int) ([]*domain.CategoryPair, error)

	// GetBrandAffinity ranks co-occurring brand pairs across multi-brand orders
	GetBrandAffinity(period domain.DateRange, channel domain.SalesChannel, limit int) ([]*domain.BrandPair, error)
}

// MomentumReporter exposes the period-over-period product comparison
type MomentumReporter interface {
	// GetProductMomentum compares the window against the preceding window of
	// equal length and partitions products into gainers and losers
	GetProductMomentum(period domain.DateRange, channel domain.SalesChannel, limit int) (*domain.MomentumReport, error)
}

// Reporter is the complete reporting surface served by the API
type Reporter interface {
	BasketReporter
	AffinityReporter
	MomentumReporter
}
