// Package parser turns the free-text workout format into workout entries.
//
// A submission is a ';' separated list of blocks, each made of five lines:
//
//	#Legs
//	-Back Squat
//	-5setsX15reps
//	-30kg
//	-10min
//
// Every block carries its own category. Bad blocks are reported with their
// 1-based position, the remaining blocks are still returned.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/workouts"

	"go.uber.org/multierr"
)

const blockSeparator = ";"

type Result struct {
	Entries []workouts.Entry
	Errors  []*workouts.ValidationError
}

// Err combines all block errors into one, or returns nil when there are none.
func (r Result) Err() error {
	var err error
	for _, vErr := range r.Errors {
		err = multierr.Append(err, vErr)
	}
	return err
}

func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Parse parses all blocks of text. Entries are dated with date and are not
// annotated with calories.
func Parse(text string, date time.Time) Result {
	result := Result{
		Entries: []workouts.Entry{},
		Errors:  []*workouts.ValidationError{},
	}

	for i, block := range strings.Split(text, blockSeparator) {
		position := i + 1
		if strings.TrimSpace(block) == "" {
			continue
		}

		entry, err := parseBlock(position, block)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		entry.Date = date
		result.Entries = append(result.Entries, entry)
	}

	return result
}

func parseBlock(position int, block string) (workouts.Entry, *workouts.ValidationError) {
	lines := splitLines(block)
	if !strings.HasPrefix(lines[0], categoryPrefix) {
		return workouts.Entry{}, workouts.NewMissingBlockError(position)
	}
	if len(lines) != len(blockLayout) {
		return workouts.Entry{}, workouts.NewMalformedBlockError(
			position,
			fmt.Sprintf("expected %d lines, got %d", len(blockLayout), len(lines)),
		)
	}

	var (
		entry workouts.Entry
		err   error
	)
	for i, kind := range blockLayout {
		line := lines[i]
		switch kind {
		case CategoryLine:
			entry.Category, err = parseCategory(line)
		case NameLine:
			entry.Name, err = parseName(line)
		case SetsRepsLine:
			entry.Sets, entry.Reps, err = parseSetsReps(line)
		case WeightLine:
			entry.WeightKg, err = parseWeight(line)
		case DurationLine:
			entry.DurationMin, err = parseDuration(line)
		}
		if err != nil {
			return workouts.Entry{}, toValidationError(position, err)
		}
	}

	return entry, nil
}

func toValidationError(position int, err error) *workouts.ValidationError {
	var repErr *repetitionError
	if errors.As(err, &repErr) {
		return workouts.NewInvalidRepetitionsError(position, err.Error())
	}
	return workouts.NewMalformedBlockError(position, err.Error())
}
