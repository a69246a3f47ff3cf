package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-booking/internal/domain"
)

type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
	List(ctx context.Context) ([]domain.Facility, error)
	Update(ctx context.Context, facility *domain.Facility) error
	UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
}

type facilityRepository struct {
	db *sqlx.DB
}

func NewFacilityRepository(db *sqlx.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	query := `
		INSERT INTO facilities (id, name, description, location, capacity, amenities, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		facility.ID, facility.Name, facility.Description, facility.Location,
		facility.Capacity, facility.Amenities, facility.Status,
	).Scan(&facility.CreatedAt, &facility.UpdatedAt)
}

func (r *facilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	var facility domain.Facility
	query := `SELECT * FROM facilities WHERE id = $1`

	err := r.db.GetContext(ctx, &facility, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepository) List(ctx context.Context) ([]domain.Facility, error) {
	var facilities []domain.Facility
	query := `SELECT * FROM facilities ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &facilities, query)
	return facilities, err
}

func (r *facilityRepository) Update(ctx context.Context, facility *domain.Facility) error {
	query := `
		UPDATE facilities
		SET name = :name, description = :description, location = :location,
			capacity = :capacity, amenities = :amenities, status = :status,
			updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, facility)
	return err
}

func (r *facilityRepository) UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error {
	query := `UPDATE facilities SET image_url = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, imageURL)
	return err
}

func (r *facilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM facilities WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *facilityRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM facilities`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
