package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/dashboard"
	"github.com/2beens/fitlog/internal/workouts/parser"
	"github.com/2beens/fitlog/internal/workouts/streak"
)

type snapshotBuilder interface {
	BuildSnapshot(ctx context.Context, ownerID string, refDay streak.CalendarDay) (*dashboard.Snapshot, error)
	Location() *time.Location
	Today() streak.CalendarDay
}

type entriesLister interface {
	ListEntries(ctx context.Context, params workouts.EntryParams) ([]workouts.Entry, error)
}

// contextService is what the tool handlers need, kept small for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetSnapshot(ctx context.Context, ownerID string, day *streak.CalendarDay) (*dashboard.Snapshot, error)
	ListWorkoutsForDate(ctx context.Context, ownerID string, day streak.CalendarDay) ([]workouts.Entry, error)
	ParseText(text string) ParsePreview
}

// ParsePreview is the dry run result of parsing workout text. Nothing is stored.
type ParsePreview struct {
	Entries       []workouts.Entry            `json:"workouts"`
	Errors        []*workouts.ValidationError `json:"errors"`
	TotalCalories int                         `json:"totalCaloriesBurnt"`
}

type ContextService struct {
	schema    SchemaRepo
	entries   entriesLister
	snapshots snapshotBuilder
	now       func() time.Time
}

func NewContextService(schemaRepo SchemaRepo, entries entriesLister, snapshots snapshotBuilder) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		entries:   entries,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// GetSchema returns the DB schema of the fitlog tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetFitlogColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

// GetSnapshot builds the dashboard of the owner, for today when day is nil.
func (s *ContextService) GetSnapshot(ctx context.Context, ownerID string, day *streak.CalendarDay) (*dashboard.Snapshot, error) {
	refDay := s.snapshots.Today()
	if day != nil {
		refDay = *day
	}
	return s.snapshots.BuildSnapshot(ctx, ownerID, refDay)
}

func (s *ContextService) ListWorkoutsForDate(ctx context.Context, ownerID string, day streak.CalendarDay) ([]workouts.Entry, error) {
	loc := s.snapshots.Location()
	from, to := day.Start(loc), day.End(loc)
	return s.entries.ListEntries(ctx, workouts.EntryParams{
		OwnerID: ownerID,
		From:    &from,
		To:      &to,
	})
}

func (s *ContextService) ParseText(text string) ParsePreview {
	result := parser.Parse(text, s.now())
	for i := range result.Entries {
		result.Entries[i].Annotate()
	}
	return ParsePreview{
		Entries:       result.Entries,
		Errors:        result.Errors,
		TotalCalories: workouts.SumCalories(result.Entries),
	}
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fitlog DB Schema\n\nNo fitlog tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Fitlog DB Schema\n\n")
	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|---------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}
