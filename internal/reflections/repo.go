package reflections

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts/streak"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the reflection, creating the owner record when missing.
func (r *Repo) Add(ctx context.Context, reflection *Reflection) (_ *Reflection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reflections.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", reflection.OwnerID))

	if reflection.Reflection == "" || reflection.Date == "" {
		return nil, ErrEmptyReflection
	}
	if reflection.CreatedAt.IsZero() {
		reflection.CreatedAt = time.Now()
	}

	if err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO owner (id, created_at) VALUES ($1, now()) ON CONFLICT (id) DO NOTHING;`,
			reflection.OwnerID,
		); err != nil {
			return fmt.Errorf("upsert owner: %w", err)
		}
		return tx.QueryRow(
			ctx,
			`INSERT INTO reflection (owner_id, day, reflection, created_at) VALUES ($1, $2::date, $3, $4) RETURNING id;`,
			reflection.OwnerID, reflection.Date, reflection.Reflection, reflection.CreatedAt,
		).Scan(&reflection.ID)
	}); err != nil {
		return nil, fmt.Errorf("add reflection: %w", err)
	}

	return reflection, nil
}

// ListForDay returns the reflections of the owner for one day, oldest first.
func (r *Repo) ListForDay(ctx context.Context, ownerID string, day streak.CalendarDay) (_ []Reflection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reflections.listForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, day, reflection, created_at
			FROM reflection
			WHERE owner_id = $1 AND day = $2::date
			ORDER BY created_at, id;`,
		ownerID, day.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}
	defer rows.Close()

	reflections := []Reflection{}
	for rows.Next() {
		var refl Reflection
		var dayDate time.Time
		if err := rows.Scan(&refl.ID, &refl.OwnerID, &dayDate, &refl.Reflection, &refl.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		refl.Date = streak.DayOf(dayDate, time.UTC).String()
		reflections = append(reflections, refl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return reflections, nil
}
