package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-booking/internal/domain"
)

type FacilityBookingCount struct {
	FacilityID   uuid.UUID `json:"facilityId" db:"facility_id"`
	FacilityName string    `json:"facilityName" db:"facility_name"`
	Count        int64     `json:"count" db:"count"`
}

type MonthlyBookingCount struct {
	Month string `json:"month" db:"month"`
	Count int64  `json:"count" db:"count"`
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	List(ctx context.Context, status *domain.BookingStatus, params domain.PaginationParams) ([]domain.Booking, int64, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, reviewedBy uuid.UUID, reviewedAt time.Time, notes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
	CountByFacility(ctx context.Context) ([]FacilityBookingCount, error)
	CountByMonth(ctx context.Context) ([]MonthlyBookingCount, error)
}

// event_date is a DATE column; lib/pq would otherwise hand it back as a
// time.Time and the string field would end up holding an RFC3339 timestamp.
const bookingColumns = `
	id, user_id, facility_id, event_name, description, purpose,
	to_char(event_date, 'YYYY-MM-DD') AS event_date,
	start_time, end_time, attendees, equipment, status,
	reviewed_by, reviewed_at, admin_notes, created_at, updated_at`

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, facility_id, event_name, description, purpose,
			event_date, start_time, end_time, attendees, equipment, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		booking.ID, booking.UserID, booking.FacilityID, booking.EventName,
		booking.Description, booking.Purpose, booking.Date, booking.StartTime,
		booking.EndTime, booking.Attendees, booking.Equipment, booking.Status,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1`

	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	var bookings []domain.Booking
	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &bookings, query, userID)
	return bookings, err
}

func (r *bookingRepository) List(ctx context.Context, status *domain.BookingStatus, params domain.PaginationParams) ([]domain.Booking, int64, error) {
	params.Validate()

	var total int64
	var bookings []domain.Booking

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM bookings WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `SELECT` + bookingColumns + `
			FROM bookings
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &bookings, query, *status, params.PageSize, params.Offset())
		return bookings, total, err
	}

	countQuery := `SELECT COUNT(*) FROM bookings`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &bookings, query, params.PageSize, params.Offset())
	return bookings, total, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET event_name = :event_name, description = :description, purpose = :purpose,
			event_date = :event_date, start_time = :start_time, end_time = :end_time,
			attendees = :attendees, equipment = :equipment, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, booking)
	return err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, reviewedBy uuid.UUID, reviewedAt time.Time, notes *string) error {
	query := `
		UPDATE bookings
		SET status = $2, reviewed_by = $3, reviewed_at = $4, admin_notes = $5, updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, status, reviewedBy, reviewedAt, notes)
	return err
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	rows := []struct {
		Status domain.BookingStatus `db:"status"`
		Count  int64                `db:"count"`
	}{}

	query := `
		SELECT status, COUNT(*) AS count
		FROM bookings
		GROUP BY status`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[domain.BookingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *bookingRepository) CountByFacility(ctx context.Context) ([]FacilityBookingCount, error) {
	var rows []FacilityBookingCount
	query := `
		SELECT b.facility_id, f.name AS facility_name, COUNT(*) AS count
		FROM bookings b
		JOIN facilities f ON f.id = b.facility_id
		GROUP BY b.facility_id, f.name
		ORDER BY count DESC`

	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *bookingRepository) CountByMonth(ctx context.Context) ([]MonthlyBookingCount, error) {
	var rows []MonthlyBookingCount
	query := `
		SELECT to_char(event_date, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM bookings
		GROUP BY month
		ORDER BY month ASC`

	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}
