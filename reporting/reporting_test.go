package reporting

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewStore(db), mock
}

func TestTagTotals(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"tag_id", "tag_name", "total_hours", "user_count", "entry_count"}).
		AddRow("t1", "Tokyo Tower", 12.5, 3, 5).
		AddRow("t2", "Osaka Office", 4.0, 1, 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM tags t")).
		WithArgs("2025-06-01", "2025-06-30").
		WillReturnRows(rows)

	got, err := store.TagTotals("2025-06-01", "2025-06-30", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Tokyo Tower", got[0].TagName)
	assert.Equal(t, 12.5, got[0].TotalHours)
	assert.Equal(t, int64(3), got[0].UserCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagTotalsScopedToUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("dr.user_id = $3")).
		WithArgs("2025-06-01", "2025-06-30", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"tag_id", "tag_name", "total_hours", "user_count", "entry_count"}))

	got, err := store.TagTotals("2025-06-01", "2025-06-30", "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserTotals(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"user_id", "user_name", "employee_id", "total_hours", "report_days"}).
		AddRow("u1", "Taro Tanaka", "E001", 32.0, 4)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users u")).
		WithArgs("2025-06-01", "2025-06-30").
		WillReturnRows(rows)

	got, err := store.UserTotals("2025-06-01", "2025-06-30", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "E001", got[0].EmployeeID)
	assert.Equal(t, int64(4), got[0].ReportDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentSummaries(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"department_name", "employee_count", "average_hours", "total_hours", "late_count", "absent_count"}).
		AddRow("IT", 2, 7.5, 300.0, 3, 1).
		AddRow("Sales", 0, 0, 0, 0, 0)
	mock.ExpectQuery(regexp.QuoteMeta("FROM departments d")).
		WithArgs("2025-06-01", "2025-06-30").
		WillReturnRows(rows)

	got, err := store.DepartmentSummaries("2025-06-01", "2025-06-30")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "IT", got[0].DepartmentName)
	assert.Equal(t, int64(1), got[0].AbsentCount)
	assert.Zero(t, got[1].TotalHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPercentages(t *testing.T) {
	totals := []TagTotal{
		{TagID: "a", TotalHours: 6},
		{TagID: "b", TotalHours: 2},
	}
	shares, grand := Percentages(totals)
	assert.Equal(t, 8.0, grand)
	require.Len(t, shares, 2)
	assert.InDelta(t, 75.0, shares[0].Percentage, 0.001)
	assert.InDelta(t, 25.0, shares[1].Percentage, 0.001)

	var sum float64
	for _, s := range shares {
		sum += s.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestPercentagesAllZero(t *testing.T) {
	shares, grand := Percentages([]TagTotal{{TagID: "a"}, {TagID: "b"}})
	assert.Zero(t, grand)
	for _, s := range shares {
		assert.Zero(t, s.Percentage)
	}
}

func TestPercentagesEmpty(t *testing.T) {
	shares, grand := Percentages(nil)
	assert.Zero(t, grand)
	assert.Empty(t, shares)
}
