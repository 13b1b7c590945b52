package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"github.com/akozyrev/basket-analytics-api/pkg/utils"
)

// Windows of at least this many days require a pair to co-occur twice
// before it is ranked; shorter windows carry less data, so a single
// co-occurrence qualifies. Categories always require two (see the
// repository query).
const strictThresholdSpanDays = 14

func minCountForSpan(period domain.DateRange) int {
	if period.Days() >= strictThresholdSpanDays {
		return 2
	}
	return 1
}

// GetProductAffinity ranks co-purchased product pairs and derives the
// association statistics. Support normalizes by all orders in the window,
// confidence by each side's own order count, lift by the independence
// expectation; every denominator is guarded.
func (s *Service) GetProductAffinity(
	period domain.DateRange,
	channel domain.SalesChannel,
	limit int,
	anchorProductID int64,
) ([]*domain.ProductPair, error) {
	if limit <= 0 {
		limit = s.cfg.Analytics.DefaultPairLimit
	}

	rows, err := s.affinityRepo.GetProductPairs(period, channel, anchorProductID, minCountForSpan(period), limit)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   period.Start,
			"end":     period.End,
			"channel": channel,
			"anchor":  anchorProductID,
		}).Error("product-affinity: failed to read product pairs")
		return nil, err
	}

	if len(rows) == 0 {
		return []*domain.ProductPair{}, nil
	}

	totalOrders, err := s.affinityRepo.CountOrders(period, channel)
	if err != nil {
		logrus.WithError(err).Error("product-affinity: failed to count orders")
		return nil, err
	}

	keySet := make(map[string]struct{}, len(rows)*2)
	for _, row := range rows {
		keySet[row.KeyA] = struct{}{}
		keySet[row.KeyB] = struct{}{}
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}

	orderCounts, err := s.affinityRepo.GetProductOrderCounts(period, channel, keys)
	if err != nil {
		logrus.WithError(err).Error("product-affinity: failed to read per-product order counts")
		return nil, err
	}

	pairs := make([]*domain.ProductPair, 0, len(rows))
	for _, row := range rows {
		count := float64(row.Count)
		countA := float64(orderCounts[row.KeyA])
		countB := float64(orderCounts[row.KeyB])

		support := 0.0
		if totalOrders > 0 {
			support = count / float64(totalOrders)
		}

		confidenceAtoB := 0.0
		if countA > 0 {
			confidenceAtoB = count / countA
		}

		confidenceBtoA := 0.0
		if countB > 0 {
			confidenceBtoA = count / countB
		}

		lift := 0.0
		if countA > 0 && countB > 0 {
			lift = count * float64(totalOrders) / (countA * countB)
		}

		pairs = append(pairs, &domain.ProductPair{
			ProductAID:     row.IDA,
			ProductA:       row.NameA,
			ProductBID:     row.IDB,
			ProductB:       row.NameB,
			Count:          row.Count,
			Support:        utils.RoundWithFourDecimalPlace(support),
			ConfidenceAtoB: utils.RoundWithThreeDecimalPlace(confidenceAtoB),
			ConfidenceBtoA: utils.RoundWithThreeDecimalPlace(confidenceBtoA),
			Lift:           utils.RoundWithTwoDecimalPlace(lift),
		})
	}

	return pairs, nil
}

// GetCategoryAffinity ranks co-occurring category pairs after parent
// rollup. Unlike products and brands, single-category orders still
// participate, and the minimum count is two regardless of the window.
func (s *Service) GetCategoryAffinity(
	period domain.DateRange,
	channel domain.SalesChannel,
	limit int,
) ([]*domain.CategoryPair, error) {
	if limit <= 0 {
		limit = s.cfg.Analytics.DefaultPairLimit
	}

	rows, err := s.affinityRepo.GetCategoryPairs(period, channel, limit)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   period.Start,
			"end":     period.End,
			"channel": channel,
		}).Error("category-affinity: failed to read category pairs")
		return nil, err
	}

	pairs := make([]*domain.CategoryPair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, &domain.CategoryPair{
			CategoryA: row.NameA,
			CategoryB: row.NameB,
			Count:     row.Count,
		})
	}

	return pairs, nil
}

// GetBrandAffinity ranks co-occurring brand pairs. Products without a
// brand are excluded before pairing.
func (s *Service) GetBrandAffinity(
	period domain.DateRange,
	channel domain.SalesChannel,
	limit int,
) ([]*domain.BrandPair, error) {
	if limit <= 0 {
		limit = s.cfg.Analytics.DefaultPairLimit
	}

	rows, err := s.affinityRepo.GetBrandPairs(period, channel, minCountForSpan(period), limit)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   period.Start,
			"end":     period.End,
			"channel": channel,
		}).Error("brand-affinity: failed to read brand pairs")
		return nil, err
	}

	pairs := make([]*domain.BrandPair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, &domain.BrandPair{
			BrandA: row.NameA,
			BrandB: row.NameB,
			Count:  row.Count,
		})
	}

	return pairs, nil
}
