package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts/streak"
	"github.com/2beens/fitlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo is the postgres backed workout store.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertOwner creates the owner record if it does not exist yet.
func (r *Repo) UpsertOwner(ctx context.Context, ownerID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.upsertOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO owner (id, created_at) VALUES ($1, now()) ON CONFLICT (id) DO NOTHING;`,
		ownerID,
	); err != nil {
		return newStoreError("upsert owner", err)
	}
	return nil
}

func (r *Repo) GetOwner(ctx context.Context, ownerID string) (_ *Owner, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	var owner Owner
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, current_streak, highest_streak, last_workout_at, created_at FROM owner WHERE id = $1;`,
		ownerID,
	).Scan(&owner.ID, &owner.CurrentStreak, &owner.HighestStreak, &owner.LastWorkoutAt, &owner.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{OwnerID: ownerID}
		}
		return nil, newStoreError("get owner", err)
	}

	return &owner, nil
}

// AddEntries stores all entries in one transaction and returns them with their IDs set.
func (r *Repo) AddEntries(ctx context.Context, ownerID string, entries []Entry) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))
	span.SetAttributes(attribute.Int("entries.count", len(entries)))

	if len(entries) == 0 {
		return []Entry{}, nil
	}

	added := make([]Entry, 0, len(entries))
	if err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var lastWorkoutAt time.Time
		for _, entry := range entries {
			entry.OwnerID = ownerID
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO workout
					(owner_id, submission_id, category, name, sets, reps, weight_kg, duration_min, calories_burned, performed_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id;`,
				ownerID, entry.SubmissionID, entry.Category, entry.Name, entry.Sets, entry.Reps,
				entry.WeightKg, entry.DurationMin, entry.CaloriesBurned, entry.Date,
			).Scan(&entry.ID); err != nil {
				return fmt.Errorf("insert workout: %w", err)
			}
			if entry.Date.After(lastWorkoutAt) {
				lastWorkoutAt = entry.Date
			}
			added = append(added, entry)
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE owner SET last_workout_at = GREATEST(COALESCE(last_workout_at, $2), $2) WHERE id = $1;`,
			ownerID, lastWorkoutAt,
		); err != nil {
			return fmt.Errorf("update last workout: %w", err)
		}
		return nil
	}); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, &NotFoundError{OwnerID: ownerID}
		}
		return nil, newStoreError("add entries", err)
	}

	return added, nil
}

// ListEntries returns entries of the owner within the params range, oldest first.
func (r *Repo) ListEntries(ctx context.Context, params EntryParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", params.OwnerID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+entryColumns+`
			FROM workout
			WHERE owner_id = $1
				AND ($2::timestamptz IS NULL OR performed_at >= $2)
				AND ($3::timestamptz IS NULL OR performed_at < $3)
			ORDER BY performed_at, id;`,
		params.OwnerID, params.From, params.To,
	)
	if err != nil {
		return nil, newStoreError("list entries", err)
	}
	defer rows.Close()

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, newStoreError("list entries", err)
	}
	return entries, nil
}

// ListRecentDates returns the dates of the most recent limit entries, newest first.
func (r *Repo) ListRecentDates(ctx context.Context, ownerID string, limit int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listRecentDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT performed_at FROM workout WHERE owner_id = $1 ORDER BY performed_at DESC LIMIT $2;`,
		ownerID, limit,
	)
	if err != nil {
		return nil, newStoreError("list recent dates", err)
	}
	defer rows.Close()

	dates, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, newStoreError("list recent dates", err)
	}
	return dates, nil
}

// List returns a page of the owner's entries, newest first, and the total count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Entry, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", params.OwnerID))
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 || params.Size < 1 {
		return nil, 0, fmt.Errorf("invalid page [%d] or size [%d]", params.Page, params.Size)
	}

	var total int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE owner_id = $1;`,
		params.OwnerID,
	).Scan(&total); err != nil {
		return nil, 0, newStoreError("count entries", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+entryColumns+`
			FROM workout
			WHERE owner_id = $1
			ORDER BY performed_at DESC, id DESC
			LIMIT $2 OFFSET $3;`,
		params.OwnerID, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, 0, newStoreError("list page", err)
	}
	defer rows.Close()

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, 0, newStoreError("list page", err)
	}
	return entries, total, nil
}

// WorkoutDays returns the distinct calendar days, observed in loc, the owner worked out on.
func (r *Repo) WorkoutDays(ctx context.Context, ownerID string, loc *time.Location) (_ []streak.CalendarDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.workoutDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	if loc == nil {
		loc = time.UTC
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT (performed_at AT TIME ZONE $2)::date AS day
			FROM workout
			WHERE owner_id = $1
			ORDER BY day;`,
		ownerID, loc.String(),
	)
	if err != nil {
		return nil, newStoreError("workout days", err)
	}
	defer rows.Close()

	// a postgres date scans as midnight UTC
	dates, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, newStoreError("workout days", err)
	}
	days := make([]streak.CalendarDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, streak.DayOf(d, time.UTC))
	}
	return days, nil
}

func (r *Repo) Totals(ctx context.Context, ownerID string) (_ Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	var totals Totals
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*), COALESCE(SUM(calories_burned), 0) FROM workout WHERE owner_id = $1;`,
		ownerID,
	).Scan(&totals.Workouts, &totals.Calories); err != nil {
		return Totals{}, newStoreError("totals", err)
	}
	return totals, nil
}

// UpdateStreak raises the highest streak to candidate if it is greater and returns
// the stored highest streak. The stored current streak is replaced only when current
// is set, otherwise it is left as is.
func (r *Repo) UpdateStreak(ctx context.Context, ownerID string, current *int, candidate int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateStreak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))
	span.SetAttributes(attribute.Int("streak.candidate", candidate))
	if current != nil {
		span.SetAttributes(attribute.Int("streak.current", *current))
	}

	var highest int
	if err := r.db.QueryRow(
		ctx,
		`UPDATE owner
			SET current_streak = COALESCE($2::integer, current_streak), highest_streak = GREATEST(highest_streak, $3)
			WHERE id = $1
		RETURNING highest_streak;`,
		ownerID, current, candidate,
	).Scan(&highest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &NotFoundError{OwnerID: ownerID}
		}
		return 0, newStoreError("update streak", err)
	}
	return highest, nil
}

const entryColumns = `id, owner_id, submission_id, category, name, sets, reps, weight_kg, duration_min, calories_burned, performed_at`

func rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID, &entry.OwnerID, &entry.SubmissionID, &entry.Category, &entry.Name,
			&entry.Sets, &entry.Reps, &entry.WeightKg, &entry.DurationMin, &entry.CaloriesBurned, &entry.Date,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
