package reporting

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/akozyrev/basket-analytics-api/infrastructure/repository"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"github.com/akozyrev/basket-analytics-api/pkg/utils"
)

// momentumCandidate pairs a product's two windows with its unrounded
// growth. Classification and ordering use the unrounded value; rounding
// happens only when the entry is emitted.
type momentumCandidate struct {
	current  *repository.ProductPeriodStats
	previous *repository.ProductPeriodStats
	growth   float64
}

// GetProductMomentum compares the window against the immediately preceding
// window of equal length. Growth is defined only for products with
// positive prior revenue; products newly on sale are excluded rather than
// reported as infinite growth.
func (s *Service) GetProductMomentum(
	period domain.DateRange,
	channel domain.SalesChannel,
	limit int,
) (*domain.MomentumReport, error) {
	if limit <= 0 {
		limit = s.cfg.Analytics.DefaultRankLimit
	}

	prior := period.Previous()

	current, err := s.momentumRepo.GetProductPeriodStats(period, channel)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   period.Start,
			"end":     period.End,
			"channel": channel,
		}).Error("momentum: failed to read current period stats")
		return nil, err
	}

	previous, err := s.momentumRepo.GetProductPeriodStats(prior, channel)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start":   prior.Start,
			"end":     prior.End,
			"channel": channel,
		}).Error("momentum: failed to read prior period stats")
		return nil, err
	}

	previousByID := make(map[int64]*repository.ProductPeriodStats, len(previous))
	for _, entry := range previous {
		previousByID[entry.ProductID] = entry
	}

	var gainers, losers []*momentumCandidate
	for _, entry := range current {
		if entry.Revenue < s.cfg.Analytics.MomentumMinRevenue {
			continue
		}

		prev, ok := previousByID[entry.ProductID]
		if !ok || prev.Revenue <= 0 {
			continue
		}

		growth := (entry.Revenue - prev.Revenue) / prev.Revenue * 100
		candidate := &momentumCandidate{current: entry, previous: prev, growth: growth}

		switch {
		case growth > 0:
			gainers = append(gainers, candidate)
		case growth < 0:
			losers = append(losers, candidate)
		}
	}

	sort.Slice(gainers, func(i, j int) bool {
		if gainers[i].growth != gainers[j].growth {
			return gainers[i].growth > gainers[j].growth
		}
		return gainers[i].current.Name < gainers[j].current.Name
	})

	sort.Slice(losers, func(i, j int) bool {
		if losers[i].growth != losers[j].growth {
			return losers[i].growth < losers[j].growth
		}
		return losers[i].current.Name < losers[j].current.Name
	})

	if len(gainers) > limit {
		gainers = gainers[:limit]
	}
	if len(losers) > limit {
		losers = losers[:limit]
	}

	return &domain.MomentumReport{
		Gainers: toMomentumEntries(gainers),
		Losers:  toMomentumEntries(losers),
		Current: period,
		Prior:   prior,
	}, nil
}

func toMomentumEntries(candidates []*momentumCandidate) []*domain.MomentumEntry {
	entries := make([]*domain.MomentumEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, &domain.MomentumEntry{
			ProductID:        c.current.ProductID,
			ProductName:      c.current.Name,
			CurrentRevenue:   utils.RoundWithTwoDecimalPlace(c.current.Revenue),
			PreviousRevenue:  utils.RoundWithTwoDecimalPlace(c.previous.Revenue),
			CurrentQuantity:  c.current.Quantity,
			PreviousQuantity: c.previous.Quantity,
			GrowthPct:        utils.RoundWithOneDecimalPlace(c.growth),
		})
	}
	return entries
}
