package domain

// ProductPair is one co-purchased product pair with its association-rule
// statistics. The pair is canonical: each unordered pair appears exactly
// once, with A preceding B under the store's key order.
type ProductPair struct {
	ProductAID     int64   `json:"productAId"`
	ProductA       string  `json:"productA"`
	ProductBID     int64   `json:"productBId"`
	ProductB       string  `json:"productB"`
	Count          int     `json:"count"`
	Support        float64 `json:"support"`
	ConfidenceAtoB float64 `json:"confidenceAtoB"`
	ConfidenceBtoA float64 `json:"confidenceBtoA"`
	Lift           float64 `json:"lift"`
}

// CategoryPair is a co-occurring category pair after parent rollup.
type CategoryPair struct {
	CategoryA string `json:"categoryA"`
	CategoryB string `json:"categoryB"`
	Count     int    `json:"count"`
}

// BrandPair is a co-occurring brand pair. Products without a brand do not
// participate in brand affinity.
type BrandPair struct {
	BrandA string `json:"brandA"`
	BrandB string `json:"brandB"`
	Count  int    `json:"count"`
}
