package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/akozyrev/basket-analytics-api/infrastructure/database/postgres"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
)

const (
	summarySnapshotsTable = "basket_summary_snapshots bss"
)

type SummarySnapshotRepository interface {
	GetByDateAndChannel(date time.Time, channel domain.SalesChannel) (*domain.SummarySnapshot, error)
	GetByDateRange(startDate, endDate time.Time, channel domain.SalesChannel) ([]*domain.SummarySnapshot, error)
	SaveOrUpdate(snapshot *domain.SummarySnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type summarySnapshotRepository struct {
	conn *postgres.Connection
}

func NewSummarySnapshotRepository(conn *postgres.Connection) SummarySnapshotRepository {
	return &summarySnapshotRepository{
		conn: conn,
	}
}

func (r *summarySnapshotRepository) GetByDateAndChannel(date time.Time, channel domain.SalesChannel) (*domain.SummarySnapshot, error) {
	query, args, err := squirrel.
		Select("bss.id, bss.date, bss.channel, bss.summary, bss.created_at, bss.updated_at").
		From(summarySnapshotsTable).
		Where(squirrel.Eq{"bss.date": date.Format(time.DateOnly), "bss.channel": channel.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan summary snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *summarySnapshotRepository) GetByDateRange(startDate, endDate time.Time, channel domain.SalesChannel) ([]*domain.SummarySnapshot, error) {
	query, args, err := squirrel.
		Select("bss.id, bss.date, bss.channel, bss.summary, bss.created_at, bss.updated_at").
		From(summarySnapshotsTable).
		Where(squirrel.Eq{"bss.channel": channel.String()}).
		Where(squirrel.GtOrEq{"bss.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"bss.date": endDate.Format(time.DateOnly)}).
		OrderBy("bss.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot range query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.SummarySnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary snapshots: %w", err)
	}

	return snapshots, nil
}

func (r *summarySnapshotRepository) SaveOrUpdate(snapshot *domain.SummarySnapshot) error {
	var summaryJSON []byte
	var err error

	if snapshot.Summary != nil {
		summaryJSON, err = json.Marshal(snapshot.Summary)
		if err != nil {
			return fmt.Errorf("failed to serialize summary: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("basket_summary_snapshots").
		Columns("date", "channel", "summary").
		Values(
			snapshot.Date.Format(time.DateOnly),
			snapshot.Channel.String(),
			summaryJSON,
		).
		Suffix(`
			ON CONFLICT (date, channel) DO UPDATE SET
				summary = EXCLUDED.summary,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build snapshot upsert: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute snapshot upsert: %w", err)
	}

	return nil
}

func (r *summarySnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("basket_summary_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build snapshot prune query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *summarySnapshotRepository) scanSnapshot(scan func(...any) error) (*domain.SummarySnapshot, error) {
	snapshot := &domain.SummarySnapshot{}
	var summaryJSON []byte
	var channel string

	err := scan(
		&snapshot.ID,
		&snapshot.Date,
		&channel,
		&summaryJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Channel = domain.SalesChannel(channel)

	if summaryJSON != nil {
		summary := &domain.BasketSummary{}
		if err := json.Unmarshal(summaryJSON, summary); err != nil {
			return nil, fmt.Errorf("failed to deserialize summary json: %w", err)
		}
		snapshot.Summary = summary
	}

	return snapshot, nil
}
