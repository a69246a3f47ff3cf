package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"campus-booking/internal/domain"
	"campus-booking/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBookingRepository(db)

	booking := &domain.Booking{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		FacilityID: uuid.New(),
		EventName:  "Career Fair",
		Purpose:    "Annual career fair",
		Date:       "2026-10-01",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Status:     domain.BookingPending,
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(booking.ID, booking.UserID, booking.FacilityID, booking.EventName,
			booking.Description, booking.Purpose, booking.Date, booking.StartTime,
			booking.EndTime, booking.Attendees, booking.Equipment, booking.Status).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := repo.Create(context.Background(), booking)

	assert.NoError(t, err)
	assert.Equal(t, now, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewBookingRepository(db)

		id := uuid.New()
		userID := uuid.New()
		facilityID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "user_id", "facility_id", "event_name", "purpose",
			"event_date", "start_time", "end_time", "status", "created_at", "updated_at",
		}).AddRow(
			id.String(), userID.String(), facilityID.String(), "Career Fair", "Annual career fair",
			"2026-10-01", "09:00", "17:00", "pending", time.Now(), time.Now(),
		)

		// event_date is DATE in the schema; the query must read it back as
		// YYYY-MM-DD text, not let the driver produce a time.Time.
		mock.ExpectQuery(`to_char\(event_date, 'YYYY-MM-DD'\) AS event_date.* FROM bookings WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(rows)

		booking, err := repo.GetByID(context.Background(), id)

		assert.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, id, booking.ID)
		assert.Equal(t, "2026-10-01", booking.Date)
		assert.Equal(t, domain.BookingPending, booking.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found Returns Nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewBookingRepository(db)

		id := uuid.New()
		mock.ExpectQuery(`FROM bookings WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		booking, err := repo.GetByID(context.Background(), id)

		assert.NoError(t, err)
		assert.Nil(t, booking)
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBookingRepository(db)

	id := uuid.New()
	reviewerID := uuid.New()
	notes := "Approved for the full day"

	mock.ExpectExec("UPDATE bookings").
		WithArgs(id, domain.BookingApproved, reviewerID, sqlmock.AnyArg(), &notes).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, domain.BookingApproved, reviewerID, time.Now(), &notes)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBookingRepository(db)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 2).
			AddRow("approved", 3).
			AddRow("rejected", 1))

	counts, err := repo.CountByStatus(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.BookingPending])
	assert.Equal(t, int64(3), counts[domain.BookingApproved])
	assert.Equal(t, int64(1), counts[domain.BookingRejected])
}

func TestBookingRepository_List_StatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBookingRepository(db)

	status := domain.BookingPending
	params := domain.PaginationParams{Page: 1, PageSize: 20}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status = \$1`).
		WithArgs(status).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	id := uuid.New()
	mock.ExpectQuery(`to_char\(event_date, 'YYYY-MM-DD'\) AS event_date.* FROM bookings WHERE status = \$1`).
		WithArgs(status, params.PageSize, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_date", "status"}).
			AddRow(id.String(), "2026-10-01", "pending"))

	bookings, total, err := repo.List(context.Background(), &status, params)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bookings, 1)
	assert.Equal(t, id, bookings[0].ID)
	assert.Equal(t, "2026-10-01", bookings[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUserRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice@campus.edu").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "alice@campus.edu")

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewNotificationRepository(db)

	id := uuid.New()
	mock.ExpectExec("UPDATE notifications SET status = 'read'").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkAsRead(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAsRead_Idempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewNotificationRepository(db)

	id := uuid.New()

	// First call flips the row; the WHERE status = 'unread' guard makes the
	// second call a no-op, and the caller sees success both times.
	mock.ExpectExec(`UPDATE notifications SET status = 'read', read_at = NOW\(\) WHERE id = \$1 AND status = 'unread'`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE notifications SET status = 'read', read_at = NOW\(\) WHERE id = \$1 AND status = 'unread'`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.MarkAsRead(context.Background(), id))
	assert.NoError(t, repo.MarkAsRead(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
