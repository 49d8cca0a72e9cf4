package reflections

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts/streak"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

type reflectionsRepo interface {
	Add(ctx context.Context, reflection *Reflection) (*Reflection, error)
	ListForDay(ctx context.Context, ownerID string, day streak.CalendarDay) ([]Reflection, error)
}

var (
	_ reflectionsRepo = (*Repo)(nil)
	_ reflectionsRepo = (*TestRepo)(nil)
)

type AddRequest struct {
	Date       string `json:"date"`
	Reflection string `json:"reflection"`
}

type Handler struct {
	repo reflectionsRepo
}

func NewHandler(repo reflectionsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reflections.add")
	defer span.End()

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add reflection, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Reflection = strings.TrimSpace(req.Reflection)
	if req.Date == "" || req.Reflection == "" {
		http.Error(w, ErrEmptyReflection.Error(), http.StatusBadRequest)
		return
	}
	day, err := streak.ParseDay(req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, &Reflection{
		OwnerID:    auth.OwnerID(ctx),
		Date:       day.String(),
		Reflection: req.Reflection,
	})
	if err != nil {
		if errors.Is(err, ErrEmptyReflection) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add reflection for %s: %s", day, err)
		http.Error(w, "error, failed to add reflection", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal reflection: %s", err)
		http.Error(w, "failed to marshal reflection", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reflections.list")
	defer span.End()

	day, err := streak.ParseDay(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	reflections, err := handler.repo.ListForDay(ctx, auth.OwnerID(ctx), day)
	if err != nil {
		log.Errorf("failed to list reflections for %s: %s", day, err)
		http.Error(w, "error, failed to get reflections", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(reflections)
	if err != nil {
		log.Errorf("failed to marshal reflections: %s", err)
		http.Error(w, "failed to marshal reflections", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
