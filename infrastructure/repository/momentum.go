package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/akozyrev/basket-analytics-api/infrastructure/database/postgres"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
)

const (
	dailyProductSalesTable = "daily_product_sales dps"
)

// ProductPeriodStats is one product's summed revenue and quantity over a
// window, read from the pre-aggregated daily rollup.
type ProductPeriodStats struct {
	ProductID int64
	Name      string
	Revenue   float64
	Quantity  float64
}

type MomentumRepository interface {
	GetProductPeriodStats(period domain.DateRange, channel domain.SalesChannel) ([]*ProductPeriodStats, error)
}

type momentumRepository struct {
	conn *postgres.Connection
}

func NewMomentumRepository(conn *postgres.Connection) MomentumRepository {
	return &momentumRepository{
		conn: conn,
	}
}

func (r *momentumRepository) GetProductPeriodStats(period domain.DateRange, channel domain.SalesChannel) ([]*ProductPeriodStats, error) {
	builder := squirrel.
		Select(
			"dps.product_id",
			"p.name",
			"SUM(dps.revenue) AS revenue",
			"SUM(dps.quantity) AS quantity",
		).
		From(dailyProductSalesTable).
		Join("products p ON p.id = dps.product_id").
		Where(squirrel.GtOrEq{"dps.day": period.Start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dps.day": period.End.Format(time.DateOnly)})

	if channel != domain.ChannelAll {
		builder = builder.Where(squirrel.Eq{"dps.channel": channel.String()})
	}

	query, args, err := builder.
		GroupBy("dps.product_id", "p.name").
		Having("SUM(dps.revenue) > 0").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product period stats query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query product period stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*ProductPeriodStats, 0)
	for rows.Next() {
		entry := &ProductPeriodStats{}
		if err := rows.Scan(&entry.ProductID, &entry.Name, &entry.Revenue, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan product period stats: %w", err)
		}
		stats = append(stats, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product period stats: %w", err)
	}

	return stats, nil
}
