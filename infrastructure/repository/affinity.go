package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/akozyrev/basket-analytics-api/infrastructure/database/postgres"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

// Pair queries join the order-to-entity relation against itself under a
// strict key order, so each unordered pair is counted exactly once.
// Counts are ranked descending with a name tie-break to keep output
// deterministic across identical counts.

const productPairsQuery = `
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
	       COALESCE(oi.product_id, 0) AS product_id,
	       COALESCE(p.name, oi.name) AS product_name
	FROM eligible_orders eo
	JOIN order_items oi ON oi.order_id = eo.id
	LEFT JOIN products p ON p.id = oi.product_id
),
multi_orders AS (
	SELECT order_id FROM order_products GROUP BY order_id HAVING COUNT(*) >= 2
)
SELECT a.product_key, a.product_id, a.product_name,
       b.product_key, b.product_id, b.product_name,
       COUNT(DISTINCT a.order_id) AS cnt
FROM order_products a
JOIN order_products b
  ON b.order_id = a.order_id AND a.product_key < b.product_key
WHERE a.order_id IN (SELECT order_id FROM multi_orders)
  AND ($4::bigint = 0 OR a.product_id = $4 OR b.product_id = $4)
GROUP BY a.product_key, a.product_id, a.product_name,
         b.product_key, b.product_id, b.product_name
HAVING COUNT(DISTINCT a.order_id) >= $5
ORDER BY cnt DESC, a.product_name ASC, b.product_name ASC
LIMIT $6`

const productOrderCountsQuery = `
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
	       COALESCE('p:' || oi.product_id::text, 'i:' || oi.id::text) AS product_key
	FROM eligible_orders eo
	JOIN order_items oi ON oi.order_id = eo.id
)
SELECT product_key, COUNT(DISTINCT order_id)
FROM order_products
WHERE product_key = ANY($4)
GROUP BY product_key`

// Category pairs roll a subcategory up to its parent and keep uncategorized
// lines under the literal 'Unknown'. The minimum count of two is fixed for
// categories regardless of the window length.
const categoryPairsQuery = `
WITH eligible_orders AS (
	SELECT o.id
	FROM orders o
	WHERE o.order_date BETWEEN $1 AND $2
	  AND o.is_return = FALSE
	  AND o.is_active = TRUE
	  AND ($3 = 'all' OR o.channel = $3)
),
order_categories AS (
	SELECT DISTINCT eo.id AS order_id,
	       COALESCE(pc.name, c.name, 'Unknown') AS category_name
	FROM eligible_orders eo
	JOIN order_items oi ON oi.order_id = eo.id
	LEFT JOIN products p ON p.id = oi.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN categories pc ON pc.id = c.parent_id
)
SELECT a.category_name, b.category_name, COUNT(DISTINCT a.order_id) AS cnt
FROM order_categories a
JOIN order_categories b
  ON b.order_id = a.order_id AND a.category_name < b.category_name
GROUP BY a.category_name, b.category_name
HAVING COUNT(DISTINCT a.order_id) >= 2
ORDER BY cnt DESC, a.category_name ASC, b.category_name ASC
LIMIT $4`

const brandPairsQuery = `
WITH eligible_orders AS (
	SELECT o.id
	FROM orders o
	WHERE o.order_date BETWEEN $1 AND $2
	  AND o.is_return = FALSE
	  AND o.is_active = TRUE
	  AND ($3 = 'all' OR o.channel = $3)
),
order_brands AS (
	SELECT DISTINCT eo.id AS order_id, p.brand
	FROM eligible_orders eo
	JOIN order_items oi ON oi.order_id = eo.id
	JOIN products p ON p.id = oi.product_id
	WHERE p.brand IS NOT NULL AND p.brand <> ''
),
multi_brand_orders AS (
	SELECT order_id FROM order_brands GROUP BY order_id HAVING COUNT(*) >= 2
)
SELECT a.brand, b.brand, COUNT(DISTINCT a.order_id) AS cnt
FROM order_brands a
JOIN order_brands b
  ON b.order_id = a.order_id AND a.brand < b.brand
WHERE a.order_id IN (SELECT order_id FROM multi_brand_orders)
GROUP BY a.brand, b.brand
HAVING COUNT(DISTINCT a.order_id) >= $4
ORDER BY cnt DESC, a.brand ASC, b.brand ASC
LIMIT $5`

// ProductPairRow is one product pair as returned by the store, before
// support/confidence/lift derivation. Keys carry the 'p:'/'i:' prefix and
// match the keys of GetProductOrderCounts.
type ProductPairRow struct {
	KeyA  string
	IDA   int64
	NameA string
	KeyB  string
	IDB   int64
	NameB string
	Count int
}

// EntityPairRow is a named-entity pair (category or brand) with its count.
type EntityPairRow struct {
	NameA string
	NameB string
	Count int
}

type AffinityRepository interface {
	GetProductPairs(period domain.DateRange, channel domain.SalesChannel, anchorProductID int64, minCount, limit int) ([]*ProductPairRow, error)
	GetProductOrderCounts(period domain.DateRange, channel domain.SalesChannel, keys []string) (map[string]int, error)
	CountOrders(period domain.DateRange, channel domain.SalesChannel) (int, error)
	GetCategoryPairs(period domain.DateRange, channel domain.SalesChannel, limit int) ([]*EntityPairRow, error)
	GetBrandPairs(period domain.DateRange, channel domain.SalesChannel, minCount, limit int) ([]*EntityPairRow, error)
}

type affinityRepository struct {
	conn *postgres.Connection
}

func NewAffinityRepository(conn *postgres.Connection) AffinityRepository {
	return &affinityRepository{
		conn: conn,
	}
}

func (r *affinityRepository) GetProductPairs(
	period domain.DateRange,
	channel domain.SalesChannel,
	anchorProductID int64,
	minCount, limit int,
) ([]*ProductPairRow, error) {
	rows, err := r.conn.Query(
		productPairsQuery,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		channel.String(),
		anchorProductID,
		minCount,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query product pairs: %w", err)
	}
	defer rows.Close()

	pairs := make([]*ProductPairRow, 0)
	for rows.Next() {
		pair := &ProductPairRow{}
		err := rows.Scan(
			&pair.KeyA, &pair.IDA, &pair.NameA,
			&pair.KeyB, &pair.IDB, &pair.NameB,
			&pair.Count,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product pair: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product pairs: %w", err)
	}

	return pairs, nil
}

func (r *affinityRepository) GetProductOrderCounts(
	period domain.DateRange,
	channel domain.SalesChannel,
	keys []string,
) (map[string]int, error) {
	counts := make(map[string]int, len(keys))
	if len(keys) == 0 {
		return counts, nil
	}

	rows, err := r.conn.Query(
		productOrderCountsQuery,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		channel.String(),
		pq.Array(keys),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query product order counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan product order count: %w", err)
		}
		counts[key] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product order counts: %w", err)
	}

	return counts, nil
}

func (r *affinityRepository) CountOrders(period domain.DateRange, channel domain.SalesChannel) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(ordersTable).
		Where(squirrel.GtOrEq{"o.order_date": period.Start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"o.order_date": period.End.Format(time.DateOnly)}).
		Where(squirrel.Eq{"o.is_return": false, "o.is_active": true})

	if channel != domain.ChannelAll {
		builder = builder.Where(squirrel.Eq{"o.channel": channel.String()})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build order count query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to scan order count: %w", err)
	}

	return total, nil
}

func (r *affinityRepository) GetCategoryPairs(
	period domain.DateRange,
	channel domain.SalesChannel,
	limit int,
) ([]*EntityPairRow, error) {
	rows, err := r.conn.Query(
		categoryPairsQuery,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		channel.String(),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query category pairs: %w", err)
	}
	defer rows.Close()

	return scanEntityPairs(rows)
}

func (r *affinityRepository) GetBrandPairs(
	period domain.DateRange,
	channel domain.SalesChannel,
	minCount, limit int,
) ([]*EntityPairRow, error) {
	rows, err := r.conn.Query(
		brandPairsQuery,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		channel.String(),
		minCount,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query brand pairs: %w", err)
	}
	defer rows.Close()

	return scanEntityPairs(rows)
}

func scanEntityPairs(rows *sql.Rows) ([]*EntityPairRow, error) {
	pairs := make([]*EntityPairRow, 0)
	for rows.Next() {
		pair := &EntityPairRow{}
		if err := rows.Scan(&pair.NameA, &pair.NameB, &pair.Count); err != nil {
			return nil, fmt.Errorf("failed to scan entity pair: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entity pairs: %w", err)
	}

	return pairs, nil
}
