//go:build integration

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/workouts/dashboard"
	"github.com/2beens/fitlog/internal/workouts/handlers"
	"github.com/2beens/fitlog/internal/workouts/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legsAndArms = "#Legs\n-Back Squat\n-5setsX15reps\n-30kg\n-10min;#Arms\n-Curl\n-0setsX10reps\n-10kg\n-5min"

func (s *IntegrationTestSuite) TestWorkouts_Unauthorized() {
	ctx := context.Background()

	status, body := s.doRequest(ctx, http.MethodGet, "/dashboard", "", nil, nil)
	s.Equal(http.StatusUnauthorized, status)
	s.Equal("no can do\n", string(body))

	status, _ = s.doRequest(ctx, http.MethodGet, "/dashboard", "not-a-token", nil, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkouts_SubmitAndRead() {
	ctx := context.Background()
	owner := "owner-" + uuid.NewString()
	token := s.newToken(owner)
	today := time.Now().UTC().Format(time.DateOnly)

	status, _ := s.doRequest(ctx, http.MethodGet, "/profile", token, nil, nil)
	s.Equal(http.StatusNotFound, status)

	status, body := s.doRequest(ctx, http.MethodPost, "/workouts", token, handlers.AddRequest{
		WorkoutString: legsAndArms,
		Date:          today,
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status, string(body))

	var result service.SubmissionResult
	require.NoError(s.T(), json.Unmarshal(body, &result))
	require.Len(s.T(), result.Entries, 1)
	s.Equal(1500, result.Entries[0].CaloriesBurned)
	s.Equal("Back Squat", result.Entries[0].Name)
	require.Len(s.T(), result.Errors, 1)
	s.Equal(2, result.Errors[0].Position)

	status, body = s.doRequest(ctx, http.MethodGet, "/workouts?date="+today, token, nil, nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var day handlers.DayResponse
	require.NoError(s.T(), json.Unmarshal(body, &day))
	s.Len(day.TodaysWorkouts, 1)
	s.Equal(1500, day.TotalCaloriesBurnt)

	status, body = s.doRequest(ctx, http.MethodGet, "/dashboard?date="+today, token, nil, nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var snapshot dashboard.Snapshot
	require.NoError(s.T(), json.Unmarshal(body, &snapshot))
	s.Equal(1500, snapshot.TotalCalories)
	s.Equal(1, snapshot.TotalWorkouts)
	s.Equal(1, snapshot.CurrentStreak)
	s.Equal(1, snapshot.HighestStreak)
	require.Len(s.T(), snapshot.Week.CaloriesBurned, 7)
	s.Equal(1500, snapshot.Week.CaloriesBurned[6])

	status, body = s.doRequest(ctx, http.MethodGet, "/workouts/list/page/1/size/10", token, nil, nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var list handlers.ListResponse
	require.NoError(s.T(), json.Unmarshal(body, &list))
	s.Equal(1, list.Total)

	status, _ = s.doRequest(ctx, http.MethodGet, "/profile", token, nil, nil)
	s.Equal(http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestWorkouts_RejectedSubmissionStoresNothing() {
	ctx := context.Background()
	owner := "owner-" + uuid.NewString()
	token := s.newToken(owner)

	status, body := s.doRequest(ctx, http.MethodPost, "/workouts", token, handlers.AddRequest{
		WorkoutString: "Legs\n-Squat\n-5setsX10reps",
	}, nil)
	require.Equal(s.T(), http.StatusBadRequest, status, string(body))

	var errResp handlers.ErrorResponse
	require.NoError(s.T(), json.Unmarshal(body, &errResp))
	s.NotEmpty(errResp.Errors)

	var count int
	require.NoError(s.T(), s.DB.QueryRow("SELECT COUNT(*) FROM workout WHERE owner_id = $1", owner).Scan(&count))
	s.Zero(count)
}

func (s *IntegrationTestSuite) TestWorkouts_IdempotentReplay() {
	ctx := context.Background()
	owner := "owner-" + uuid.NewString()
	token := s.newToken(owner)
	key := map[string]string{"Idempotency-Key": uuid.NewString()}

	request := handlers.AddRequest{
		WorkoutString: "#Cardio\n-" + strings.TrimSpace(gofakeit.HipsterWord()) + "\n-1setsX1reps\n-0kg\n-30min",
	}

	status, first := s.doRequest(ctx, http.MethodPost, "/workouts", token, request, key)
	require.Equal(s.T(), http.StatusCreated, status, string(first))

	status, second := s.doRequest(ctx, http.MethodPost, "/workouts", token, request, key)
	require.Equal(s.T(), http.StatusCreated, status)
	assert.JSONEq(s.T(), string(first), string(second))

	var count int
	require.NoError(s.T(), s.DB.QueryRow("SELECT COUNT(*) FROM workout WHERE owner_id = $1", owner).Scan(&count))
	s.Equal(1, count)
}

func (s *IntegrationTestSuite) TestWorkouts_LogoutRevokesToken() {
	ctx := context.Background()
	token := s.newToken("owner-" + uuid.NewString())

	status, body := s.doRequest(ctx, http.MethodPost, "/a/logout", token, nil, nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	status, _ = s.doRequest(ctx, http.MethodGet, "/dashboard", token, nil, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestReflections() {
	ctx := context.Background()
	token := s.newToken("owner-" + uuid.NewString())
	today := time.Now().UTC().Format(time.DateOnly)

	status, body := s.doRequest(ctx, http.MethodPost, "/reflections", token, map[string]string{
		"date":       today,
		"reflection": gofakeit.Sentence(8),
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status, string(body))

	status, body = s.doRequest(ctx, http.MethodGet, "/reflections?date="+today, token, nil, nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var reflections []map[string]any
	require.NoError(s.T(), json.Unmarshal(body, &reflections))
	s.Len(reflections, 1)
}

func (s *IntegrationTestSuite) TestHealthAndMCPSecret() {
	ctx := context.Background()

	status, body := s.doRequest(ctx, http.MethodGet, "/health", "", nil, nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	s.Contains(string(body), `"ok"`)

	status, _ = s.doRequest(ctx, http.MethodPost, "/mcp", "", map[string]any{}, nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.doRequest(ctx, http.MethodPost, "/mcp", "", map[string]any{}, map[string]string{
		"X-MCP-Secret": "wrong",
	})
	s.Equal(http.StatusUnauthorized, status)
}
