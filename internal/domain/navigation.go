package domain

// NavigationItem is one entry of the client menu for a role.
type NavigationItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var requesterNavigation = []NavigationItem{
	{Key: "dashboard", Label: "Dashboard", Path: "/dashboard"},
	{Key: "facilities", Label: "Facilities", Path: "/facilities"},
	{Key: "my-bookings", Label: "My Bookings", Path: "/bookings"},
	{Key: "notifications", Label: "Notifications", Path: "/notifications"},
	{Key: "profile", Label: "Profile", Path: "/profile"},
}

var adminNavigation = []NavigationItem{
	{Key: "dashboard", Label: "Dashboard", Path: "/admin/dashboard"},
	{Key: "bookings", Label: "Booking Requests", Path: "/admin/bookings"},
	{Key: "facilities", Label: "Manage Facilities", Path: "/admin/facilities"},
	{Key: "users", Label: "Manage Users", Path: "/admin/users"},
	{Key: "reports", Label: "Reports", Path: "/admin/reports"},
	{Key: "notifications", Label: "Notifications", Path: "/notifications"},
	{Key: "profile", Label: "Profile", Path: "/profile"},
}

// NavigationForRole resolves the fixed menu variant for a role. Unknown
// roles get the requester set.
func NavigationForRole(role string) []NavigationItem {
	if role == string(RoleAdmin) {
		return adminNavigation
	}
	return requesterNavigation
}
