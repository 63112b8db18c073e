package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/smartygym/internal/utils"
)

// IssueType classifies a rejected input.
type IssueType string

const (
	IssueOutOfRange   IssueType = "out_of_range"
	IssueMissingField IssueType = "missing_field"
	IssueInvalidDate  IssueType = "invalid_date"
	IssueInvalidValue IssueType = "invalid_value"
)

// Issue is a single problem found in submitted input.
type Issue struct {
	Type        IssueType
	Field       string
	Description string
}

// Result collects every issue found during one validation pass.
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}
	var b strings.Builder
	b.WriteString("Invalid input:\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "- %s\n", issue.Description)
	}
	return b.String()
}

// Err returns nil when the result is clean, otherwise an *Error wrapping it.
func (r Result) Err() error {
	if !r.HasIssues() {
		return nil
	}
	return &Error{Result: r}
}

// Error is returned by services when input fails validation.
type Error struct {
	Result Result
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Result.Issues))
	for _, issue := range e.Result.Issues {
		parts = append(parts, issue.Description)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Hint points users at the accepted ranges.
func (e *Error) Hint() string {
	return "run with --help to see accepted ranges for each field"
}

func (r *Result) add(t IssueType, field, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Type: t, Field: field, Description: fmt.Sprintf(format, args...)})
}

func (r *Result) intRange(field string, v *int, lo, hi int) {
	if v == nil {
		return
	}
	if *v < lo || *v > hi {
		r.add(IssueOutOfRange, field, "%s must be between %d and %d, got %d", field, lo, hi, *v)
	}
}

func (r *Result) floatRange(field string, v *float64, lo, hi float64) {
	if v == nil {
		return
	}
	if *v < lo || *v > hi {
		r.add(IssueOutOfRange, field, "%s must be between %g and %g, got %g", field, lo, hi, *v)
	}
}

func (r *Result) required(field string, present bool) {
	if !present {
		r.add(IssueMissingField, field, "%s is required", field)
	}
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(date string) Result {
	var r Result
	if !utils.ValidateDate(date) {
		r.add(IssueInvalidDate, "date", "date %q is not a valid YYYY-MM-DD date", date)
	}
	return r
}

// ValidateTimezone checks an IANA timezone name ("Local" allowed).
func ValidateTimezone(tz string) Result {
	var r Result
	if !utils.ValidateTimezone(tz) {
		r.add(IssueInvalidValue, "timezone", "unknown timezone %q", tz)
	}
	return r
}
