package dto

// DashboardStats aggregates the per-user counts shown on the landing page.
// Amendments degrades to zero when the optional amendments table is absent.
type DashboardStats struct {
	Username         string `json:"username"`
	AssignedCourses  int    `json:"assignedCourses"`
	AvailableCourses int    `json:"availableCourses"`
	Amendments       int    `json:"amendments"`
}
