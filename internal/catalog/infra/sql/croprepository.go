package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type cropRepository struct {
	db pkgsql.Client
}

func NewCropRepository(db pkgsql.Client) domain.CropRepository {
	return cropRepository{db: db}
}

func (r cropRepository) NextID() domain.CropID {
	return domain.CropID{UUID: uuid.New()}
}

func (r cropRepository) Add(ctx context.Context, crop *domain.Crop) error {
	query, args, err := sq.
		Insert("crops").
		Columns("id", "name").
		Values(crop.ID.UUID, crop.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return wrapAddError(err)
}

func (r cropRepository) FindAll(ctx context.Context) ([]domain.Crop, error) {
	query, args, err := sq.
		Select("id", "name").
		From("crops").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxCrop
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Crop, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.Crop{
			ID:   domain.CropID{UUID: row.ID},
			Name: row.Name,
		})
	}

	return result, nil
}

type sqlxCrop struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}
