package handlers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) echo.Context {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	return c
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

// Validation runs before any database access, so a handler with a nil DB is
// enough to exercise the rejection paths.
func TestReportCreateValidation(t *testing.T) {
	h := NewReportHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing date", `{"workContent":"fixed the thing"}`},
		{"missing work content", `{"date":"2025-06-16"}`},
		{"efforts over the cap", `{"date":"2025-06-16","workContent":"x","tagEfforts":[{"tagId":"a","hours":5},{"tagId":"b","hours":3.5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newJSONContext(http.MethodPost, "/api/reports/daily", tt.body)
			err := h.Create(c)
			assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		})
	}
}

func TestReportUpdateValidation(t *testing.T) {
	h := NewReportHandler(nil, nil)

	c := newJSONContext(http.MethodPut, "/api/reports/daily/r1", `{"date":"2025-06-16"}`)
	err := h.Update(c)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))

	c = newJSONContext(http.MethodPut, "/api/reports/daily/r1",
		`{"date":"2025-06-16","workContent":"x","tagEfforts":[{"tagId":"a","hours":9}]}`)
	err = h.Update(c)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

// A second report for the same (user, date) trips the composite unique index;
// the translated gorm.ErrDuplicatedKey must map to a 400, not a generic 500.
func TestReportCreateDuplicateDate(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewReportHandler(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "daily_reports"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	c := newJSONContext(http.MethodPost, "/api/reports/daily",
		`{"date":"2025-06-16","workContent":"wrote the weekly summary","tagEfforts":[{"tagId":"t1","hours":3}]}`)
	err := h.Create(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "a report for this date already exists", he.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportGetRequiresDate(t *testing.T) {
	h := NewReportHandler(nil, nil)
	c := newJSONContext(http.MethodGet, "/api/reports/daily", "")
	err := h.Get(c)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestEffortSummaryRequiresRange(t *testing.T) {
	h := NewReportHandler(nil, nil)

	for _, target := range []string{
		"/api/efforts/summary",
		"/api/efforts/summary?startDate=2025-06-01",
		"/api/efforts/summary?endDate=2025-06-30",
	} {
		c := newJSONContext(http.MethodGet, target, "")
		err := h.EffortSummary(c)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err), target)
	}
}

func TestEffortTotal(t *testing.T) {
	assert.Zero(t, effortTotal(nil))
	assert.InDelta(t, 7.5, effortTotal([]tagEffortInput{
		{TagID: "a", Hours: 3},
		{TagID: "b", Hours: 4.5},
	}), 0.001)
}
