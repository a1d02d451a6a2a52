package request

// TimesheetQueryRequest selects an employee's reconstructed timesheet days
// over an inclusive date range.
type TimesheetQueryRequest struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	From       string `form:"from" binding:"required,datetime=2006-01-02"`
	To         string `form:"to" binding:"required,datetime=2006-01-02"`
}
