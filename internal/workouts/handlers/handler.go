package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/idempotency"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/dashboard"
	"github.com/2beens/fitlog/internal/workouts/service"
	"github.com/2beens/fitlog/internal/workouts/streak"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=handlers_test

type submitter interface {
	Submit(ctx context.Context, sub service.Submission) (*service.SubmissionResult, error)
}

type entryReader interface {
	GetOwner(ctx context.Context, ownerID string) (*workouts.Owner, error)
	ListEntries(ctx context.Context, params workouts.EntryParams) ([]workouts.Entry, error)
	List(ctx context.Context, params workouts.ListParams) ([]workouts.Entry, int, error)
}

type dashboardBuilder interface {
	BuildSnapshot(ctx context.Context, ownerID string, refDay streak.CalendarDay) (*dashboard.Snapshot, error)
	BuildStreaks(ctx context.Context, ownerID string, refDay streak.CalendarDay) (*dashboard.StreakDetails, error)
	Location() *time.Location
	Today() streak.CalendarDay
}

type replayCache interface {
	Begin(ownerID, key string) (func(), error)
	Get(ownerID, key string) (*idempotency.Response, bool)
	Set(ownerID, key string, resp idempotency.Response) error
}

type AddRequest struct {
	WorkoutString string `json:"workoutString"`
	// Date is either YYYY-MM-DD or RFC3339, now when empty.
	Date string `json:"date,omitempty"`
}

type ErrorResponse struct {
	Message string                      `json:"message"`
	Errors  []*workouts.ValidationError `json:"errors,omitempty"`
}

type DayResponse struct {
	TodaysWorkouts     []workouts.Entry `json:"todaysWorkouts"`
	TotalCaloriesBurnt int              `json:"totalCaloriesBurnt"`
}

type ListResponse struct {
	Workouts []workouts.Entry `json:"workouts"`
	Total    int              `json:"total"`
}

type Handler struct {
	submitter      submitter
	reader         entryReader
	dashboard      dashboardBuilder
	replays        replayCache
	metricsManager *metrics.Manager
}

func NewHandler(
	submitter submitter,
	reader entryReader,
	dashboard dashboardBuilder,
	replays replayCache,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		submitter:      submitter,
		reader:         reader,
		dashboard:      dashboard,
		replays:        replays,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	ownerID := auth.OwnerID(ctx)

	idempotencyKey := r.Header.Get(idempotency.HeaderKey)
	if idempotencyKey != "" {
		if err := idempotency.ValidateKey(idempotencyKey); err != nil {
			http.Error(w, "invalid idempotency key", http.StatusBadRequest)
			return
		}
		release, err := handler.replays.Begin(ownerID, idempotencyKey)
		if err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		// released after the response is stored below
		defer release()

		if resp, ok := handler.replays.Get(ownerID, idempotencyKey); ok {
			handler.metricsManager.CounterIdempotentReplays.Inc()
			w.Header().Set(idempotency.HeaderReplayed, "true")
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp.Body, resp.StatusCode)
			return
		}
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add workouts, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sub := service.Submission{
		OwnerID: ownerID,
		Text:    req.WorkoutString,
	}
	if req.Date != "" {
		date, err := handler.parseSubmissionDate(req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		sub.Date = &date
	}

	result, err := handler.submitter.Submit(ctx, sub)
	statusCode := http.StatusCreated
	var body []byte
	switch {
	case err == nil:
		body, err = json.Marshal(result)
	case errors.Is(err, service.ErrEmptySubmission):
		statusCode = http.StatusBadRequest
		body, err = json.Marshal(ErrorResponse{Message: err.Error()})
	case errors.Is(err, workouts.ErrSubmissionRejected):
		statusCode = http.StatusBadRequest
		var rejectionErr *service.RejectionError
		errors.As(err, &rejectionErr)
		resp := ErrorResponse{Message: "no valid workouts in submission"}
		if rejectionErr != nil {
			resp.Errors = rejectionErr.Errors
			if rejectionErr.Partial() {
				resp.Message = "submission has invalid blocks"
			}
		}
		body, err = json.Marshal(resp)
	default:
		log.Errorf("failed to add workouts for [%s]: %s", ownerID, err)
		http.Error(w, "error, failed to add workouts", http.StatusInternalServerError)
		return
	}
	if err != nil {
		log.Errorf("failed to marshal add workouts response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	if idempotencyKey != "" {
		if err := handler.replays.Set(ownerID, idempotencyKey, idempotency.Response{
			StatusCode: statusCode,
			Body:       body,
		}); err != nil {
			log.Warnf("failed to store idempotent response [%s]: %s", idempotencyKey, err)
		}
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, body, statusCode)
}

func (handler *Handler) parseSubmissionDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	day, err := streak.ParseDay(value)
	if err != nil {
		return time.Time{}, err
	}
	// noon keeps the entry on the same calendar day in nearby zones
	return day.Start(handler.dashboard.Location()).Add(12 * time.Hour), nil
}

func (handler *Handler) dayFromQuery(r *http.Request) (streak.CalendarDay, error) {
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if dateStr == "" {
		return handler.dashboard.Today(), nil
	}
	return streak.ParseDay(dateStr)
}

func (handler *Handler) HandleListByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listByDate")
	defer span.End()

	day, err := handler.dayFromQuery(r)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	loc := handler.dashboard.Location()
	from, to := day.Start(loc), day.End(loc)
	entries, err := handler.reader.ListEntries(ctx, workouts.EntryParams{
		OwnerID: auth.OwnerID(ctx),
		From:    &from,
		To:      &to,
	})
	if err != nil {
		log.Errorf("failed to list workouts for %s: %s", day, err)
		http.Error(w, "error, failed to get workouts", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []workouts.Entry{}
	}

	handler.writeJSON(w, DayResponse{
		TodaysWorkouts:     entries,
		TotalCaloriesBurnt: workouts.SumCalories(entries),
	})
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "error, page NaN or < 1", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 {
		http.Error(w, "error, size NaN or < 1", http.StatusBadRequest)
		return
	}

	entries, total, err := handler.reader.List(ctx, workouts.ListParams{
		OwnerID: auth.OwnerID(ctx),
		Page:    page,
		Size:    size,
	})
	if err != nil {
		log.Errorf("failed to list workouts page %d/%d: %s", page, size, err)
		http.Error(w, "error, failed to get workouts", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []workouts.Entry{}
	}

	handler.writeJSON(w, ListResponse{
		Workouts: entries,
		Total:    total,
	})
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.dashboard")
	defer span.End()

	day, err := handler.dayFromQuery(r)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	snapshot, err := handler.dashboard.BuildSnapshot(ctx, auth.OwnerID(ctx), day)
	if err != nil {
		handler.writeLookupError(w, "dashboard", err)
		return
	}
	handler.writeJSON(w, snapshot)
}

func (handler *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.streaks")
	defer span.End()

	details, err := handler.dashboard.BuildStreaks(ctx, auth.OwnerID(ctx), handler.dashboard.Today())
	if err != nil {
		handler.writeLookupError(w, "streaks", err)
		return
	}
	handler.writeJSON(w, details)
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.profile")
	defer span.End()

	owner, err := handler.reader.GetOwner(ctx, auth.OwnerID(ctx))
	if err != nil {
		handler.writeLookupError(w, "profile", err)
		return
	}
	handler.writeJSON(w, owner)
}

func (handler *Handler) writeLookupError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, workouts.ErrOwnerNotFound) {
		pkg.WriteResponse(w, pkg.ContentType.Text, "owner not found", http.StatusNotFound)
		return
	}
	log.Errorf("failed to get %s: %s", what, err)
	http.Error(w, "error, failed to get "+what, http.StatusInternalServerError)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
