package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"status-notifier/core/reconcile"
	"status-notifier/feature/notifier"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) RunCycle(ctx context.Context) (reconcile.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(reconcile.Summary), args.Error(1)
}

func (m *mockRunner) LastSummary() (reconcile.Summary, bool) {
	args := m.Called()
	return args.Get(0).(reconcile.Summary), args.Bool(1)
}

type fixedPlanner time.Time

func (p fixedPlanner) Next() time.Time { return time.Time(p) }

func setupApp(runner notifier.Runner, planner notifier.Planner) *fiber.App {
	app := fiber.New()
	_ = notifier.NewFeature(runner, planner, zap.NewNop()).Load(app)
	return app
}

func TestHandleRun(t *testing.T) {
	tests := []struct {
		name    string
		summary reconcile.Summary
		err     error
		want    int
	}{
		{"Done", reconcile.Summary{Phase: reconcile.PhaseDone, Changed: 2, Notified: 1}, nil, fiber.StatusOK},
		{"In Progress", reconcile.Summary{}, reconcile.ErrCycleInProgress, fiber.StatusConflict},
		{"Fetch Failed", reconcile.Summary{Phase: reconcile.PhaseFailed, FailedIn: reconcile.PhaseFetching}, &reconcile.FetchError{Err: errors.New("503")}, fiber.StatusBadGateway},
		{"Store Failed", reconcile.Summary{Phase: reconcile.PhaseFailed}, &reconcile.LoadError{Source: "instances", Err: errors.New("db down")}, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := new(mockRunner)
			runner.On("RunCycle", mock.Anything).Return(tt.summary, tt.err)

			resp, err := setupApp(runner, nil).Test(httptest.NewRequest("POST", "/notifier/run", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			if tt.want != fiber.StatusConflict {
				var got reconcile.Summary
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
				assert.Equal(t, tt.summary.Phase, got.Phase)
				assert.Equal(t, tt.summary.Changed, got.Changed)
			}
			runner.AssertExpectations(t)
		})
	}
}

func TestHandleStatus(t *testing.T) {
	t.Run("Before First Cycle", func(t *testing.T) {
		runner := new(mockRunner)
		runner.On("LastSummary").Return(reconcile.Summary{}, false)

		resp, err := setupApp(runner, nil).Test(httptest.NewRequest("GET", "/notifier/status", nil))
		require.NoError(t, err)

		var got notifier.StatusResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Nil(t, got.Last)
		assert.Nil(t, got.NextRun)
	})

	t.Run("With Summary And Schedule", func(t *testing.T) {
		next := time.Date(2026, 5, 1, 10, 15, 0, 0, time.UTC)
		runner := new(mockRunner)
		runner.On("LastSummary").Return(reconcile.Summary{Phase: reconcile.PhaseDone, Fetched: 3}, true)

		resp, err := setupApp(runner, fixedPlanner(next)).Test(httptest.NewRequest("GET", "/notifier/status", nil))
		require.NoError(t, err)

		var got notifier.StatusResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.NotNil(t, got.Last)
		assert.Equal(t, 3, got.Last.Fetched)
		require.NotNil(t, got.NextRun)
		assert.True(t, next.Equal(*got.NextRun))
	})
}
