package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/events"
	"github.com/2beens/fitlog/internal/workouts/parser"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var ErrEmptySubmission = errors.New("workout string is missing")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=service_test

type entryStore interface {
	UpsertOwner(ctx context.Context, ownerID string) error
	AddEntries(ctx context.Context, ownerID string, entries []workouts.Entry) ([]workouts.Entry, error)
	Totals(ctx context.Context, ownerID string) (workouts.Totals, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.WorkoutLogged) error
}

type Submission struct {
	OwnerID string
	Text    string
	// Date of the workouts, now when nil.
	Date *time.Time
}

type SubmissionResult struct {
	SubmissionID string                      `json:"submissionId"`
	Entries      []workouts.Entry            `json:"workouts"`
	Errors       []*workouts.ValidationError `json:"errors"`
	Badges       []workouts.Badge            `json:"badges"`
}

// RejectionError is returned when no entry of a submission was stored. ValidBlocks
// counts the blocks that parsed fine and were dropped because partial submissions
// are rejected.
type RejectionError struct {
	Errors      []*workouts.ValidationError
	ValidBlocks int
}

// Partial reports whether the submission had valid blocks and was rejected only
// because some other block failed.
func (e *RejectionError) Partial() bool {
	return e.ValidBlocks > 0
}

func (e *RejectionError) Error() string {
	var err error
	for _, vErr := range e.Errors {
		err = multierr.Append(err, vErr)
	}
	if err == nil {
		return workouts.ErrSubmissionRejected.Error()
	}
	return workouts.ErrSubmissionRejected.Error() + ": " + err.Error()
}

func (e *RejectionError) Is(target error) bool {
	return target == workouts.ErrSubmissionRejected
}

type Options struct {
	// RejectPartial rejects the whole submission when any block is invalid.
	RejectPartial bool
}

type Service struct {
	store          entryStore
	publisher      eventPublisher
	metricsManager *metrics.Manager
	rejectPartial  bool

	now   func() time.Time
	newID func() string
}

func NewService(
	store entryStore,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
	opts Options,
) *Service {
	return &Service{
		store:          store,
		publisher:      publisher,
		metricsManager: metricsManager,
		rejectPartial:  opts.RejectPartial,
		now:            time.Now,
		newID: func() string {
			return uuid.New().String()
		},
	}
}

// Submit parses, stores and announces the workouts of a submission. Valid
// blocks are stored even when others are invalid, unless partial submissions
// are rejected. Invalid blocks are always reported in the result.
func (s *Service) Submit(ctx context.Context, sub Submission) (_ *SubmissionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.submit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", sub.OwnerID))

	if strings.TrimSpace(sub.Text) == "" {
		return nil, ErrEmptySubmission
	}

	date := s.now()
	if sub.Date != nil {
		date = *sub.Date
	}

	parsed := parser.Parse(sub.Text, date)
	for _, vErr := range parsed.Errors {
		s.metricsManager.CounterRejectedBlocks.WithLabelValues(string(vErr.Kind)).Inc()
	}
	span.SetAttributes(attribute.Int("entries.valid", len(parsed.Entries)))
	span.SetAttributes(attribute.Int("entries.invalid", len(parsed.Errors)))
	if parsed.HasErrors() {
		log.Debugf("owner [%s] submission has invalid blocks: %s", sub.OwnerID, parsed.Err())
	}

	if len(parsed.Entries) == 0 && !parsed.HasErrors() {
		return nil, ErrEmptySubmission
	}
	if len(parsed.Entries) == 0 || (s.rejectPartial && parsed.HasErrors()) {
		return nil, &RejectionError{Errors: parsed.Errors, ValidBlocks: len(parsed.Entries)}
	}

	submissionID := s.newID()
	for i := range parsed.Entries {
		parsed.Entries[i].OwnerID = sub.OwnerID
		parsed.Entries[i].SubmissionID = submissionID
		parsed.Entries[i].Annotate()
	}

	if err := s.store.UpsertOwner(ctx, sub.OwnerID); err != nil {
		return nil, err
	}
	added, err := s.store.AddEntries(ctx, sub.OwnerID, parsed.Entries)
	if err != nil {
		return nil, err
	}
	s.metricsManager.CounterWorkoutsLogged.Add(float64(len(added)))

	result := &SubmissionResult{
		SubmissionID: submissionID,
		Entries:      added,
		Errors:       parsed.Errors,
		Badges:       []workouts.Badge{},
	}

	// entries are stored at this point, a failed badge lookup only drops the badges
	if totals, err := s.store.Totals(ctx, sub.OwnerID); err != nil {
		log.Warnf("submission [%s]: get totals for badges: %s", submissionID, err)
	} else {
		result.Badges = workouts.MilestoneBadges(totals)
	}

	s.publish(ctx, sub.OwnerID, result)

	return result, nil
}

func (s *Service) publish(ctx context.Context, ownerID string, result *SubmissionResult) {
	event := events.WorkoutLogged{
		EventID:       s.newID(),
		SubmissionID:  result.SubmissionID,
		OwnerID:       ownerID,
		OccurredAt:    s.now().UTC(),
		Entries:       result.Entries,
		TotalCalories: workouts.SumCalories(result.Entries),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metricsManager.CounterEventsPublished.WithLabelValues("error").Inc()
		log.Errorf("submission [%s]: publish workout event: %s", result.SubmissionID, err)
		return
	}
	s.metricsManager.CounterEventsPublished.WithLabelValues("ok").Inc()
}
