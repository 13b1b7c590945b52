package domain

// BasketSummary carries the aggregate basket KPIs for one date range and
// channel selection. Field names are the API contract; values arrive
// already rounded for display.
type BasketSummary struct {
	TotalOrders      int     `json:"totalOrders"`
	AvgBasketSize    float64 `json:"avgBasketSize"`
	MultiItemOrders  int     `json:"multiItemOrders"`
	MultiItemPct     float64 `json:"multiItemPct"`
	MultiItemRevenue float64 `json:"multiItemRevenue"`
	TotalRevenue     float64 `json:"totalRevenue"`
	MultiItemAOV     float64 `json:"multiItemAov"`
	SingleItemAOV    float64 `json:"singleItemAov"`
	AOVUplift        float64 `json:"aovUplift"`
	TopPair          string  `json:"topPair"`
	TopPairCount     int     `json:"topPairCount"`
}

// BasketBucket is one basket-size class of the distribution report. Empty
// classes are absent from the result rather than zero-filled.
type BasketBucket struct {
	Bucket        string  `json:"bucket"`
	Orders        int     `json:"orders"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}
