package domain

// MomentumEntry compares one product's revenue and quantity between the
// current window and the immediately preceding window of equal length.
type MomentumEntry struct {
	ProductID        int64   `json:"productId"`
	ProductName      string  `json:"productName"`
	CurrentRevenue   float64 `json:"currentRevenue"`
	PreviousRevenue  float64 `json:"previousRevenue"`
	CurrentQuantity  float64 `json:"currentQuantity"`
	PreviousQuantity float64 `json:"previousQuantity"`
	GrowthPct        float64 `json:"growthPct"`
}

// MomentumReport partitions products into gainers and losers. The lists
// are disjoint; products with zero growth appear in neither. Products
// without prior-period revenue have no defined growth and are excluded
// entirely (policy, not a data gap).
type MomentumReport struct {
	Gainers []*MomentumEntry `json:"gainers"`
	Losers  []*MomentumEntry `json:"losers"`
	Current DateRange        `json:"currentPeriod"`
	Prior   DateRange        `json:"priorPeriod"`
}
