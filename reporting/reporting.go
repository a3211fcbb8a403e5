// Package reporting is the narrow query layer behind the analytics endpoints.
// The SQL lives here, grouped and summed in the database; the percentage
// derivation is pure Go so it can be tested without a driver.
package reporting

import "gorm.io/gorm"

type TagTotal struct {
	TagID      string  `json:"tagId"`
	TagName    string  `json:"tagName"`
	TotalHours float64 `json:"totalHours"`
	UserCount  int64   `json:"userCount"`
	EntryCount int64   `json:"entryCount"`
}

type TagShare struct {
	TagTotal
	Percentage float64 `json:"percentage"`
}

type UserTotal struct {
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	EmployeeID string  `json:"employeeId"`
	TotalHours float64 `json:"totalHours"`
	ReportDays int64   `json:"reportDays"`
}

type DepartmentSummary struct {
	DepartmentName string  `json:"departmentName"`
	EmployeeCount  int64   `json:"employeeCount"`
	AverageHours   float64 `json:"averageHours"`
	TotalHours     float64 `json:"totalHours"`
	LateCount      int64   `json:"lateCount"`
	AbsentCount    int64   `json:"absentCount"`
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// TagTotals sums effort hours per active tag over an inclusive date range,
// optionally scoped to one user. Tags with zero hours in the range are
// filtered out by the HAVING clause.
func (s *Store) TagTotals(start, end, userID string) ([]TagTotal, error) {
	q := `
		SELECT t.id AS tag_id, t.name AS tag_name,
		       COALESCE(SUM(te.hours), 0) AS total_hours,
		       COUNT(DISTINCT dr.user_id) AS user_count,
		       COUNT(te.id) AS entry_count
		FROM tags t
		LEFT JOIN tag_efforts te ON te.tag_id = t.id
		LEFT JOIN daily_reports dr ON dr.id = te.daily_report_id
		WHERE t.is_active = TRUE
		  AND (dr.date >= ? OR dr.date IS NULL)
		  AND (dr.date <= ? OR dr.date IS NULL)`
	args := []any{start, end}
	if userID != "" {
		q += `
		  AND dr.user_id = ?`
		args = append(args, userID)
	}
	q += `
		GROUP BY t.id, t.name
		HAVING COALESCE(SUM(te.hours), 0) > 0
		ORDER BY total_hours DESC`

	var rows []TagTotal
	if err := s.db.Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UserTotals sums effort hours and distinct report days per employee over an
// inclusive date range, optionally scoped to one user.
func (s *Store) UserTotals(start, end, userID string) ([]UserTotal, error) {
	q := `
		SELECT u.id AS user_id, u.name AS user_name, u.employee_id,
		       COALESCE(SUM(te.hours), 0) AS total_hours,
		       COUNT(DISTINCT dr.date) AS report_days
		FROM users u
		LEFT JOIN daily_reports dr ON dr.user_id = u.id AND dr.date >= ? AND dr.date <= ?
		LEFT JOIN tag_efforts te ON te.daily_report_id = dr.id
		WHERE u.role = 'employee'`
	args := []any{start, end}
	if userID != "" {
		q += `
		  AND u.id = ?`
		args = append(args, userID)
	}
	q += `
		GROUP BY u.id, u.name, u.employee_id
		HAVING COALESCE(SUM(te.hours), 0) > 0
		ORDER BY total_hours DESC`

	var rows []UserTotal
	if err := s.db.Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DepartmentSummaries aggregates attendance per department over an inclusive
// date range. Departments without records in the range still appear, zeroed.
func (s *Store) DepartmentSummaries(start, end string) ([]DepartmentSummary, error) {
	q := `
		SELECT d.name AS department_name,
		       COUNT(DISTINCT ar.user_id) AS employee_count,
		       COALESCE(AVG(ar.total_hours), 0) AS average_hours,
		       COALESCE(SUM(ar.total_hours), 0) AS total_hours,
		       COUNT(CASE WHEN ar.status = 'late' THEN 1 END) AS late_count,
		       COUNT(CASE WHEN ar.status = 'absent' THEN 1 END) AS absent_count
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id
		LEFT JOIN attendance_records ar ON ar.user_id = u.id AND ar.date >= ? AND ar.date <= ?
		GROUP BY d.id, d.name
		ORDER BY d.name`

	var rows []DepartmentSummary
	if err := s.db.Raw(q, start, end).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Percentages derives each row's share of the grand total and returns both.
// The base is the total of the rows passed in, so a user-scoped result is
// relative to the visible subset. An all-zero set yields 0% everywhere.
func Percentages(totals []TagTotal) ([]TagShare, float64) {
	var grand float64
	for _, t := range totals {
		grand += t.TotalHours
	}
	shares := make([]TagShare, len(totals))
	for i, t := range totals {
		share := TagShare{TagTotal: t}
		if grand > 0 {
			share.Percentage = t.TotalHours / grand * 100
		}
		shares[i] = share
	}
	return shares, grand
}
