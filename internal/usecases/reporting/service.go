package reporting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/akozyrev/basket-analytics-api/infrastructure/repository"
	"github.com/akozyrev/basket-analytics-api/internal/config"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"github.com/akozyrev/basket-analytics-api/pkg/utils"
)

// noPairLabel is reported when the window has no multi-item order.
const noPairLabel = "N/A"

// bucketLabels maps the store's size classes onto display labels, in fixed
// display order. Classes 1-4 are exact counts, 5 covers 5-7 items and 6
// covers 8 and more.
var bucketLabels = map[int]string{
	1: "1 item",
	2: "2 items",
	3: "3 items",
	4: "4 items",
	5: "5-7 items",
	6: "8+ items",
}

// Service implements Reporter over the analytical store repositories
type Service struct {
	cfg          *config.Config
	basketRepo   repository.BasketRepository
	affinityRepo repository.AffinityRepository
	momentumRepo repository.MomentumRepository
}

// NewService creates the reporting service
func NewService(
	cfg *config.Config,
	basketRepo repository.BasketRepository,
	affinityRepo repository.AffinityRepository,
	momentumRepo repository.MomentumRepository,
) Reporter {
	return &Service{
		cfg:          cfg,
		basketRepo:   basketRepo,
		affinityRepo: affinityRepo,
		momentumRepo: momentumRepo,
	}
}

// GetBasketSummary computes the aggregate basket KPIs for one window.
// Every ratio guards its denominator so an empty window degrades to the
// zero-value contract instead of faulting.
func (s *Service) GetBasketSummary(period domain.DateRange, channel domain.SalesChannel) (*domain.BasketSummary, error) {
	stats, err := s.basketRepo.GetBasketStats(period, channel)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   period.Start,
			"end":     period.End,
			"channel": channel,
		}).Error("basket-summary: failed to read basket stats")
		return nil, err
	}

	multiItemPct := 0.0
	if stats.TotalOrders > 0 {
		multiItemPct = float64(stats.MultiItemOrders) / float64(stats.TotalOrders) * 100
	}

	aovUplift := 0.0
	if stats.SingleItemAOV > 0 {
		aovUplift = stats.MultiItemAOV / stats.SingleItemAOV
	}

	summary := &domain.BasketSummary{
		TotalOrders:      stats.TotalOrders,
		AvgBasketSize:    utils.RoundWithOneDecimalPlace(stats.AvgItems),
		MultiItemOrders:  stats.MultiItemOrders,
		MultiItemPct:     utils.RoundWithOneDecimalPlace(multiItemPct),
		MultiItemRevenue: utils.RoundToWholeUnits(stats.MultiItemRevenue),
		TotalRevenue:     utils.RoundToWholeUnits(stats.TotalRevenue),
		MultiItemAOV:     utils.RoundToWholeUnits(stats.MultiItemAOV),
		SingleItemAOV:    utils.RoundToWholeUnits(stats.SingleItemAOV),
		AOVUplift:        utils.RoundWithOneDecimalPlace(aovUplift),
		TopPair:          noPairLabel,
		TopPairCount:     0,
	}

	topPair, err := s.basketRepo.GetTopProductPair(period, channel)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   period.Start,
			"end":     period.End,
			"channel": channel,
		}).Error("basket-summary: failed to read top product pair")
		return nil, err
	}

	if topPair != nil {
		summary.TopPair = fmt.Sprintf("%s + %s", topPair.NameA, topPair.NameB)
		summary.TopPairCount = topPair.Count
	}

	return summary, nil
}

// GetBasketDistribution buckets orders by distinct item count. Empty
// buckets are absent from the result; the store returns the classes in
// display order.
func (s *Service) GetBasketDistribution(period domain.DateRange, channel domain.SalesChannel) ([]*domain.BasketBucket, error) {
	stats, err := s.basketRepo.GetBucketStats(period, channel)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   period.Start,
			"end":     period.End,
			"channel": channel,
		}).Error("basket-distribution: failed to read bucket stats")
		return nil, err
	}

	buckets := make([]*domain.BasketBucket, 0, len(stats))
	for _, row := range stats {
		label, ok := bucketLabels[row.SizeClass]
		if !ok {
			return nil, fmt.Errorf("unexpected basket size class: %d", row.SizeClass)
		}

		buckets = append(buckets, &domain.BasketBucket{
			Bucket:        label,
			Orders:        row.Orders,
			Revenue:       utils.RoundToWholeUnits(row.Revenue),
			AvgOrderValue: utils.RoundToWholeUnits(row.AvgOrderValue),
		})
	}

	return buckets, nil
}
