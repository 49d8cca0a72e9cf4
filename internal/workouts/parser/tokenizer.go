package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LineKind is the expected kind of a line, by its position within a block.
type LineKind int

const (
	CategoryLine LineKind = iota
	NameLine
	SetsRepsLine
	WeightLine
	DurationLine
)

// blockLayout is the only accepted order of lines in a block.
var blockLayout = []LineKind{CategoryLine, NameLine, SetsRepsLine, WeightLine, DurationLine}

const (
	categoryPrefix = "#"
	detailPrefix   = "-"
	setsSeparator  = "setsX"
	repsSuffix     = "reps"
	weightSuffix   = "kg"
	durationSuffix = "min"

	// upper bounds keep derived calories within the store's integer range
	maxRepetitions = 100_000
	maxWeightKg    = 10_000
	maxDurationMin = 1_440
)

func (k LineKind) String() string {
	switch k {
	case CategoryLine:
		return "category"
	case NameLine:
		return "name"
	case SetsRepsLine:
		return "sets/reps"
	case WeightLine:
		return "weight"
	case DurationLine:
		return "duration"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// shapeError is a line not matching the shape of its kind.
type shapeError struct {
	kind   LineKind
	line   string
	reason string
}

func (e *shapeError) Error() string {
	return fmt.Sprintf("%s line [%s]: %s", e.kind, e.line, e.reason)
}

// repetitionError is a well shaped sets/reps line with a non positive count.
type repetitionError struct {
	sets, reps int
}

func (e *repetitionError) Error() string {
	return fmt.Sprintf("sets [%d] and reps [%d] must both be positive", e.sets, e.reps)
}

// splitLines returns the trimmed, non blank lines of a block.
func splitLines(block string) []string {
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func parseCategory(line string) (string, error) {
	if !strings.HasPrefix(line, categoryPrefix) {
		return "", &shapeError{kind: CategoryLine, line: line, reason: "must start with " + categoryPrefix}
	}
	category := strings.TrimSpace(strings.TrimPrefix(line, categoryPrefix))
	if category == "" {
		return "", &shapeError{kind: CategoryLine, line: line, reason: "empty category"}
	}
	return category, nil
}

// detailBody strips the leading detail dash and an optional unit suffix.
func detailBody(kind LineKind, line, suffix string) (string, error) {
	if !strings.HasPrefix(line, detailPrefix) {
		return "", &shapeError{kind: kind, line: line, reason: "must start with " + detailPrefix}
	}
	body := strings.TrimSpace(strings.TrimPrefix(line, detailPrefix))
	if suffix != "" {
		if !strings.HasSuffix(body, suffix) {
			return "", &shapeError{kind: kind, line: line, reason: "must end with " + suffix}
		}
		body = strings.TrimSpace(strings.TrimSuffix(body, suffix))
	}
	if body == "" {
		return "", &shapeError{kind: kind, line: line, reason: "empty value"}
	}
	return body, nil
}

func parseName(line string) (string, error) {
	return detailBody(NameLine, line, "")
}

func parseSetsReps(line string) (sets int, reps int, err error) {
	body, err := detailBody(SetsRepsLine, line, repsSuffix)
	if err != nil {
		return 0, 0, err
	}

	setsPart, repsPart, found := strings.Cut(body, setsSeparator)
	if !found {
		return 0, 0, &shapeError{kind: SetsRepsLine, line: line, reason: "missing " + setsSeparator}
	}

	sets, err = parseCount(strings.TrimSpace(setsPart))
	if err != nil {
		return 0, 0, &shapeError{kind: SetsRepsLine, line: line, reason: "sets: " + err.Error()}
	}
	reps, err = parseCount(strings.TrimSpace(repsPart))
	if err != nil {
		return 0, 0, &shapeError{kind: SetsRepsLine, line: line, reason: "reps: " + err.Error()}
	}

	if sets <= 0 || reps <= 0 {
		return 0, 0, &repetitionError{sets: sets, reps: reps}
	}
	return sets, reps, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer [%s]", s)
	}
	if n > maxRepetitions {
		return 0, fmt.Errorf("exceeds %d", maxRepetitions)
	}
	return n, nil
}

func parseQuantity(kind LineKind, line, suffix string, max float64) (float64, error) {
	body, err := detailBody(kind, line, suffix)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, &shapeError{kind: kind, line: line, reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &shapeError{kind: kind, line: line, reason: "not a finite number"}
	}
	if v < 0 {
		return 0, &shapeError{kind: kind, line: line, reason: "negative value"}
	}
	if v > max {
		return 0, &shapeError{kind: kind, line: line, reason: fmt.Sprintf("exceeds %g", max)}
	}
	return v, nil
}

func parseWeight(line string) (float64, error) {
	return parseQuantity(WeightLine, line, weightSuffix, maxWeightKg)
}

func parseDuration(line string) (float64, error) {
	return parseQuantity(DurationLine, line, durationSuffix, maxDurationMin)
}
