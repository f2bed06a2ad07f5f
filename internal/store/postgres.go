package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const analysisColumns = `id, requested_by, method, criteria, options, report,
	recommended, robustness, created_at`

func (s *PostgresStore) CreateAnalysis(ctx context.Context, a *Analysis) error {
	criteriaJSON, _ := json.Marshal(a.Criteria)
	optionsJSON, _ := json.Marshal(a.Options)
	reportJSON, _ := json.Marshal(a.Report)

	return s.pool.QueryRow(ctx, `
		INSERT INTO mcda_analyses (requested_by, method, criteria, options, report,
			recommended, robustness)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		a.RequestedBy, a.Method, criteriaJSON, optionsJSON, reportJSON,
		a.Recommended, a.Robustness,
	).Scan(&a.ID, &a.CreatedAt)
}

func (s *PostgresStore) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	a := &Analysis{}
	var criteriaJSON, optionsJSON, reportJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT `+analysisColumns+`
		FROM mcda_analyses WHERE id = $1`, id,
	).Scan(
		&a.ID, &a.RequestedBy, &a.Method, &criteriaJSON, &optionsJSON, &reportJSON,
		&a.Recommended, &a.Robustness, &a.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	unmarshalAnalysis(a, criteriaJSON, optionsJSON, reportJSON)
	return a, nil
}

func (s *PostgresStore) ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM mcda_analyses WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Method != "" {
		n++
		query += fmt.Sprintf(" AND method = $%d", n)
		args = append(args, filter.Method)
	}
	if filter.RequestedBy != "" {
		n++
		query += fmt.Sprintf(" AND requested_by = $%d", n)
		args = append(args, filter.RequestedBy)
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		a := &Analysis{}
		var criteriaJSON, optionsJSON, reportJSON []byte
		if err := rows.Scan(
			&a.ID, &a.RequestedBy, &a.Method, &criteriaJSON, &optionsJSON, &reportJSON,
			&a.Recommended, &a.Robustness, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		unmarshalAnalysis(a, criteriaJSON, optionsJSON, reportJSON)
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*AnalysisStats, error) {
	stats := &AnalysisStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN method = 'weighted_scoring' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN method = 'topsis' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN method = 'pareto' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN method = 'risk_adjusted' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(jsonb_array_length(options)), 0)
		FROM mcda_analyses`,
	).Scan(&stats.Total, &stats.WeightedScoring, &stats.Topsis, &stats.Pareto,
		&stats.RiskAdjusted, &stats.AvgOptionCount)
	return stats, err
}

func unmarshalAnalysis(a *Analysis, criteriaJSON, optionsJSON, reportJSON []byte) {
	if criteriaJSON != nil {
		_ = json.Unmarshal(criteriaJSON, &a.Criteria)
	}
	if optionsJSON != nil {
		_ = json.Unmarshal(optionsJSON, &a.Options)
	}
	if reportJSON != nil {
		_ = json.Unmarshal(reportJSON, &a.Report)
	}
}
