package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

type recordingRepo struct {
	sheetRange string
	readRange  string
	rows       [][]interface{}
	err        error
	readErr    error
}

func (r *recordingRepo) WriteRow(_ context.Context, sheetRange string, values []interface{}) error {
	if r.err != nil {
		return r.err
	}
	r.sheetRange = sheetRange
	r.rows = append(r.rows, values)
	return nil
}

func (r *recordingRepo) ReadRange(_ context.Context, sheetRange string) ([][]interface{}, error) {
	r.readRange = sheetRange
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.rows, nil
}

func TestReportSink_WritesOneRowPerReport(t *testing.T) {
	repo := &recordingRepo{}
	sink := NewReportSink(repo)
	report := models.DailyReport{
		RunID:          "run-1",
		Day:            2,
		Orders:         5,
		Fulfilled:      4,
		Rejected:       1,
		Revenue:        "60.00",
		StartingBudget: "300.00",
		EndingBudget:   "360.00",
		Stock:          []models.StockReport{{Product: "Milk", Quantity: 3}, {Product: "Bread", Quantity: 0}},
		CreatedAt:      time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
	}

	require.NoError(t, sink.SaveDailyReport(context.Background(), report))

	assert.Equal(t, daysWriteRange, repo.sheetRange)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, []interface{}{
		"2024-05-01T20:00:00Z", "run-1", 2, 5, 4, 1, "60.00", "300.00", "360.00", "Milk=3 Bread=0",
	}, repo.rows[0])
}

func TestReportSink_PropagatesWriteError(t *testing.T) {
	boom := errors.New("quota exceeded")
	sink := NewReportSink(&recordingRepo{err: boom})

	err := sink.SaveDailyReport(context.Background(), models.DailyReport{Day: 1})
	assert.ErrorIs(t, err, boom)
}

func TestReportSink_CountRunRows(t *testing.T) {
	repo := &recordingRepo{rows: [][]interface{}{
		{"date", "run", "day"},
		{"2024-05-01T20:00:00Z", "run-1", 1},
		{"2024-05-01T20:00:01Z", "run-2", 1},
		{"2024-05-01T20:00:02Z", "run-1", 2},
		{},
	}}
	sink := NewReportSink(repo)

	count, err := sink.CountRunRows(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, daysWriteRange, repo.readRange)

	count, err = sink.CountRunRows(context.Background(), "run-3")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReportSink_CountRunRowsReadError(t *testing.T) {
	boom := errors.New("permission denied")
	sink := NewReportSink(&recordingRepo{readErr: boom})

	_, err := sink.CountRunRows(context.Background(), "run-1")
	assert.ErrorIs(t, err, boom)
}
