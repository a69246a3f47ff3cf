package domain_test

import (
	"testing"

	"campus-booking/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNavigationForRole(t *testing.T) {
	keys := func(items []domain.NavigationItem) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Key
		}
		return out
	}

	t.Run("Admin", func(t *testing.T) {
		nav := domain.NavigationForRole("admin")
		assert.Contains(t, keys(nav), "users")
		assert.Contains(t, keys(nav), "reports")
	})

	t.Run("Student", func(t *testing.T) {
		nav := domain.NavigationForRole("student")
		assert.Contains(t, keys(nav), "my-bookings")
		assert.NotContains(t, keys(nav), "users")
	})

	t.Run("Faculty Gets Requester Menu", func(t *testing.T) {
		assert.Equal(t, domain.NavigationForRole("student"), domain.NavigationForRole("faculty"))
	})

	t.Run("Unknown Role Falls Back To Requester Menu", func(t *testing.T) {
		assert.Equal(t, domain.NavigationForRole("student"), domain.NavigationForRole(""))
	})
}

func TestUserHasRole(t *testing.T) {
	admin := &domain.User{Role: "admin"}
	faculty := &domain.User{Role: "faculty"}
	student := &domain.User{Role: "student"}

	assert.True(t, admin.HasRole("admin"))
	assert.True(t, admin.HasRole("faculty"))
	assert.True(t, admin.HasRole("student"))

	assert.False(t, faculty.HasRole("admin"))
	assert.True(t, faculty.HasRole("faculty"))
	assert.True(t, faculty.HasRole("student"))

	assert.False(t, student.HasRole("admin"))
	assert.False(t, student.HasRole("faculty"))
	assert.True(t, student.HasRole("student"))

	assert.False(t, student.HasRole("superuser"))
}

func TestPagination(t *testing.T) {
	t.Run("Validate Clamps Bounds", func(t *testing.T) {
		p := domain.PaginationParams{Page: 0, PageSize: 500}
		p.Validate()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 100, p.PageSize)
	})

	t.Run("Offset", func(t *testing.T) {
		p := domain.PaginationParams{Page: 3, PageSize: 20}
		assert.Equal(t, 40, p.Offset())
	})

	t.Run("Response Totals", func(t *testing.T) {
		resp := domain.NewPaginatedResponse(make([]int, 20), 1, 20, 45)
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.False(t, resp.HasPrev)
	})
}

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, domain.BookingPending.IsValid())
	assert.True(t, domain.BookingApproved.IsValid())
	assert.True(t, domain.BookingRejected.IsValid())
	assert.False(t, domain.BookingStatus("cancelled").IsValid())
}
