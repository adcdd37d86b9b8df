package deck

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Severity ranks a validation issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a single finding about a deck. Element is -1 for slide- or
// deck-level issues; Slide is -1 for deck-level issues.
type Issue struct {
	Slide     int
	SlideName string
	Element   int
	Severity  Severity
	Message   string
}

func (i Issue) String() string {
	switch {
	case i.Slide < 0:
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	case i.Element < 0:
		return fmt.Sprintf("%s: slide %d (%s): %s", i.Severity, i.Slide+1, i.SlideName, i.Message)
	}
	return fmt.Sprintf("%s: slide %d (%s) element %d: %s", i.Severity, i.Slide+1, i.SlideName, i.Element+1, i.Message)
}

// ValidationError reports the error-severity issues of a deck.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "invalid deck: " + e.Issues[0].String()
	}
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("invalid deck (%d issues):\n  %s", len(e.Issues), strings.Join(lines, "\n  "))
}

// ValidateOptions tunes Validate.
type ValidateOptions struct {
	// Strict turns highlight mismatches into errors.
	Strict bool
	// Order, when non-empty, is the exact slide name sequence required.
	Order []string
}

// HighlightMatches reports whether highlight occurs exactly once in text,
// which is the only case where it is drawn emphasized.
func HighlightMatches(text, highlight string) bool {
	return highlight != "" && strings.Count(text, highlight) == 1
}

// Validate checks d and returns every issue found. The error is a
// *ValidationError holding the error-severity issues, or nil if there are none.
func Validate(d *Deck, opts ValidateOptions) ([]Issue, error) {
	var issues []Issue
	add := func(slide, elem int, sev Severity, format string, args ...interface{}) {
		name := ""
		if slide >= 0 && slide < len(d.Slides) {
			name = d.Slides[slide].Name
		}
		issues = append(issues, Issue{
			Slide:     slide,
			SlideName: name,
			Element:   elem,
			Severity:  sev,
			Message:   fmt.Sprintf(format, args...),
		})
	}

	if len(d.Slides) == 0 {
		add(-1, -1, SeverityError, "deck has no slides")
	}
	if len(opts.Order) > 0 && !slices.Equal(d.Names(), opts.Order) {
		add(-1, -1, SeverityError, "slide order %v, want %v", d.Names(), opts.Order)
	}

	seen := make(map[string]int)
	for si, s := range d.Slides {
		if s.Name == "" {
			add(si, -1, SeverityError, "slide has no name")
		} else if prev, dup := seen[s.Name]; dup {
			add(si, -1, SeverityError, "duplicate slide name, first used by slide %d", prev+1)
		} else {
			seen[s.Name] = si
		}

		for ei, e := range s.Elements {
			switch kinds := e.Kinds(); len(kinds) {
			case 0:
				add(si, ei, SeverityError, "element has no kind")
				continue
			case 1:
			default:
				add(si, ei, SeverityError, "element sets several kinds %v", kinds)
				continue
			}
			if b := e.Bullets; b != nil {
				for _, item := range b.Items {
					if item.Highlight == "" || HighlightMatches(item.Text, item.Highlight) {
						continue
					}
					sev := SeverityWarning
					if opts.Strict {
						sev = SeverityError
					}
					add(si, ei, sev, "highlight %q occurs %d times in %q; drawn plain",
						item.Highlight, strings.Count(item.Text, item.Highlight), item.Text)
				}
			}
			if b := e.Box; b != nil && (b.W <= 0 || b.H <= 0) {
				add(si, ei, SeverityError, "box size %gx%g is not positive", b.W, b.H)
			}
		}

		for _, t := range s.Texts(si) {
			if r, ok := unencodable(t.Value); !ok {
				add(si, t.Element, SeverityError, "text %q contains %q, which the core fonts cannot draw", t.Value, r)
			}
		}
	}

	var errs []Issue
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	if len(errs) > 0 {
		return issues, &ValidationError{Issues: errs}
	}
	return issues, nil
}

// unencodable returns the first rune of s that has no Windows-1252 code.
func unencodable(s string) (rune, bool) {
	enc := charmap.Windows1252
	for _, r := range s {
		if _, ok := enc.EncodeRune(r); !ok {
			return r, false
		}
	}
	return 0, true
}
