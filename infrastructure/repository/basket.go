package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/akozyrev/basket-analytics-api/infrastructure/database/postgres"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
)

// Per-order item counts use the distinct product id when the order line
// references a product, falling back to the line id otherwise. The two id
// spaces are kept apart with a 'p:'/'i:' prefix.
const basketStatsQuery = `
WITH eligible_orders AS (
	SELECT o.id, o.total
	FROM orders o
	WHERE o.order_date BETWEEN $1 AND $2
	  AND o.is_return = FALSE
	  AND o.is_active = TRUE
	  AND ($3 = 'all' OR o.channel = $3)
),
order_sizes AS (
	SELECT eo.id, eo.total,
	       COUNT(DISTINCT COALESCE('p:' || oi.product_id::text, 'i:' || oi.id::text)) AS item_count
	FROM eligible_orders eo
	JOIN order_items oi ON oi.order_id = eo.id
	GROUP BY eo.id, eo.total
)
SELECT
	COUNT(*) AS total_orders,
	COALESCE(AVG(item_count), 0) AS avg_items,
	COUNT(*) FILTER (WHERE item_count >= 2) AS multi_item_orders,
	COALESCE(SUM(total) FILTER (WHERE item_count >= 2), 0) AS multi_item_revenue,
	COALESCE(SUM(total), 0) AS total_revenue,
	COALESCE(AVG(total) FILTER (WHERE item_count >= 2), 0) AS multi_item_aov,
	COALESCE(AVG(total) FILTER (WHERE item_count = 1), 0) AS single_item_aov
FROM order_sizes`

const topPairQuery = `
WITH eligible_orders AS (
	SELECT o.id
	FROM orders o
	WHERE o.order_date BETWEEN $1 AND $2
	  AND o.is_return = FALSE
	  AND o.is_active = TRUE
	  AND ($3 = 'all' OR o.channel = $3)
),
order_products AS (
	SELECT DISTINCT eo.id AS order_id,
	       COALESCE('p:' || oi.product_id::text, 'i:' || oi.id::text) AS product_key,
	       COALESCE(p.name, oi.name) AS product_name
	FROM eligible_orders eo
	JOIN order_items oi ON oi.order_id = eo.id
	LEFT JOIN products p ON p.id = oi.product_id
),
multi_orders AS (
	SELECT order_id FROM order_products GROUP BY order_id HAVING COUNT(*) >= 2
)
SELECT a.product_name, b.product_name, COUNT(DISTINCT a.order_id) AS cnt
FROM order_products a
JOIN order_products b
  ON b.order_id = a.order_id AND a.product_key < b.product_key
WHERE a.order_id IN (SELECT order_id FROM multi_orders)
GROUP BY a.product_key, a.product_name, b.product_key, b.product_name
ORDER BY cnt DESC, a.product_name ASC, b.product_name ASC
LIMIT 1`

const bucketStatsQuery = `
WITH eligible_orders AS (
	SELECT o.id, o.total
	FROM orders o
	WHERE o.order_date BETWEEN $1 AND $2
	  AND o.is_return = FALSE
	  AND o.is_active = TRUE
	  AND ($3 = 'all' OR o.channel = $3)
),
order_sizes AS (
	SELECT eo.id, eo.total,
	       COUNT(DISTINCT COALESCE('p:' || oi.product_id::text, 'i:' || oi.id::text)) AS item_count
	FROM eligible_orders eo
	JOIN order_items oi ON oi.order_id = eo.id
	GROUP BY eo.id, eo.total
)
SELECT
	CASE
		WHEN item_count >= 8 THEN 6
		WHEN item_count >= 5 THEN 5
		ELSE item_count
	END AS size_class,
	COUNT(*) AS orders,
	COALESCE(SUM(total), 0) AS revenue,
	COALESCE(AVG(total), 0) AS avg_order_value
FROM order_sizes
GROUP BY 1
ORDER BY 1 ASC`

// BasketStats is the raw, unrounded aggregate row for one window.
type BasketStats struct {
	TotalOrders      int
	AvgItems         float64
	MultiItemOrders  int
	MultiItemRevenue float64
	TotalRevenue     float64
	MultiItemAOV     float64
	SingleItemAOV    float64
}

// PairCount is a named pair with its co-occurrence count.
type PairCount struct {
	NameA string
	NameB string
	Count int
}

// BucketStats is one basket-size class row. SizeClass is 1..4 for exact
// item counts, 5 for 5-7 items and 6 for 8+ items.
type BucketStats struct {
	SizeClass     int
	Orders        int
	Revenue       float64
	AvgOrderValue float64
}

type BasketRepository interface {
	GetBasketStats(period domain.DateRange, channel domain.SalesChannel) (*BasketStats, error)
	GetTopProductPair(period domain.DateRange, channel domain.SalesChannel) (*PairCount, error)
	GetBucketStats(period domain.DateRange, channel domain.SalesChannel) ([]*BucketStats, error)
}

type basketRepository struct {
	conn *postgres.Connection
}

func NewBasketRepository(conn *postgres.Connection) BasketRepository {
	return &basketRepository{
		conn: conn,
	}
}

func (r *basketRepository) GetBasketStats(period domain.DateRange, channel domain.SalesChannel) (*BasketStats, error) {
	row := r.conn.QueryRow(
		basketStatsQuery,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		channel.String(),
	)

	stats := &BasketStats{}
	err := row.Scan(
		&stats.TotalOrders,
		&stats.AvgItems,
		&stats.MultiItemOrders,
		&stats.MultiItemRevenue,
		&stats.TotalRevenue,
		&stats.MultiItemAOV,
		&stats.SingleItemAOV,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan basket stats: %w", err)
	}

	return stats, nil
}

func (r *basketRepository) GetTopProductPair(period domain.DateRange, channel domain.SalesChannel) (*PairCount, error) {
	row := r.conn.QueryRow(
		topPairQuery,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		channel.String(),
	)

	pair := &PairCount{}
	err := row.Scan(&pair.NameA, &pair.NameB, &pair.Count)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan top product pair: %w", err)
	}

	return pair, nil
}

func (r *basketRepository) GetBucketStats(period domain.DateRange, channel domain.SalesChannel) ([]*BucketStats, error) {
	rows, err := r.conn.Query(
		bucketStatsQuery,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		channel.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query basket distribution: %w", err)
	}
	defer rows.Close()

	buckets := make([]*BucketStats, 0)
	for rows.Next() {
		bucket := &BucketStats{}
		if err := rows.Scan(&bucket.SizeClass, &bucket.Orders, &bucket.Revenue, &bucket.AvgOrderValue); err != nil {
			return nil, fmt.Errorf("failed to scan basket bucket: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating basket buckets: %w", err)
	}

	return buckets, nil
}
