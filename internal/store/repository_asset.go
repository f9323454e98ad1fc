package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/models"
)

// assetRepository is the SQL implementation of [AssetRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions carry the request's
// trace id.
type assetRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssetRepository constructs an [AssetRepository] backed by db.
func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating asset repository")
	return &assetRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (models.Asset, error) {
	var (
		asset      models.Asset
		assignedTo sql.NullString
	)

	err := row.Scan(
		&asset.ID,
		&asset.AssetID,
		&asset.Name,
		&asset.Category,
		&asset.Status,
		&assignedTo,
		&asset.CreatedAt,
	)
	if err != nil {
		return models.Asset{}, err
	}

	if assignedTo.Valid {
		asset.AssignedTo = &assignedTo.String
	}

	return asset, nil
}

// Create inserts a new asset and returns the stored row.
func (r *assetRepository) Create(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAssetQuery(r.builder, asset)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Create").Msg("failed to build query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAsset(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Asset{}, r.writeError(ctx, "assetRepository.Create", asset, err)
	}

	log.Debug().Str("func", "assetRepository.Create").Int64("id", created.ID).Str("asset_id", created.AssetID).Msg("asset created")
	return created, nil
}

// List returns every asset that matches filter, ordered by creation time,
// newest first. An empty result is an empty, non-nil slice.
func (r *assetRepository) List(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAssetsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		asset, scanErr := scanAsset(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "assetRepository.List").Msg("failed to scan asset row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		assets = append(assets, asset)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "assetRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return assets, nil
}

// Update overwrites the mutable columns of the row identified by asset.ID in
// a single statement and returns the stored row.
func (r *assetRepository) Update(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAssetQuery(r.builder, asset)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Update").Msg("failed to build query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAsset(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrAssetNotFound
		}
		return models.Asset{}, r.writeError(ctx, "assetRepository.Update", asset, err)
	}

	return updated, nil
}

// Delete removes the row with the given id.
func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAssetQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Delete").Int64("id", id).Msg("failed to delete asset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAssetNotFound
	}

	return nil
}

// writeError maps a failed INSERT/UPDATE onto the repository's sentinels.
func (r *assetRepository) writeError(ctx context.Context, fn string, asset models.Asset, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case r.errorClassificator.IsUniqueViolation(err):
		log.Warn().Str("func", fn).Str("asset_id", asset.AssetID).Msg("asset id already exists")
		return ErrDuplicateAssetID
	case r.errorClassificator.IsCheckViolation(err):
		log.Warn().Str("func", fn).Str("asset_id", asset.AssetID).Msg("asset rejected by check constraint")
		return ErrConstraintViolated
	default:
		log.Err(err).Str("func", fn).Str("asset_id", asset.AssetID).Msg("failed to write asset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
