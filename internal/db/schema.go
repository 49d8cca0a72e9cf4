package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema creates the fitlog tables. All statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS public.owner
(
    id              VARCHAR PRIMARY KEY,
    current_streak  INTEGER     NOT NULL DEFAULT 0 CHECK (current_streak >= 0),
    highest_streak  INTEGER     NOT NULL DEFAULT 0 CHECK (highest_streak >= 0),
    last_workout_at TIMESTAMPTZ,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.workout
(
    id              BIGSERIAL PRIMARY KEY,
    owner_id        VARCHAR          NOT NULL REFERENCES public.owner (id) ON DELETE CASCADE,
    submission_id   VARCHAR(36)      NOT NULL,
    category        VARCHAR          NOT NULL CHECK (category <> ''),
    name            VARCHAR          NOT NULL CHECK (name <> ''),
    sets            INTEGER          NOT NULL CHECK (sets > 0),
    reps            INTEGER          NOT NULL CHECK (reps > 0),
    weight_kg       DOUBLE PRECISION NOT NULL CHECK (weight_kg >= 0),
    duration_min    DOUBLE PRECISION NOT NULL CHECK (duration_min >= 0),
    calories_burned INTEGER          NOT NULL CHECK (calories_burned >= 0),
    performed_at    TIMESTAMPTZ      NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_workout_owner_performed_at ON public.workout (owner_id, performed_at);
CREATE INDEX IF NOT EXISTS ix_workout_submission_id ON public.workout (submission_id);

CREATE TABLE IF NOT EXISTS public.reflection
(
    id         SERIAL PRIMARY KEY,
    owner_id   VARCHAR     NOT NULL REFERENCES public.owner (id) ON DELETE CASCADE,
    day        DATE        NOT NULL,
    reflection TEXT        NOT NULL CHECK (reflection <> ''),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ix_reflection_owner_day ON public.reflection (owner_id, day);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	log.Debugln("db schema migrated")
	return nil
}
