package slides

import (
	"regexp"
	"strings"
)

// Generated slide content follows a fixed textual convention:
//
//	Slide 1: Optional Inline Title
//	Title: Optional Explicit Title
//	- bullet point
//	- bullet point
//	Script: free-form narration until the next slide header
//
// Parse walks the content line by line as a small state machine so that
// narration text containing a line that starts with the bullet marker is
// never misread as a bullet.
var headerRe = regexp.MustCompile(`^Slide\s+\d+\s*:\s*(.*)$`)

const (
	titleMarker  = "Title:"
	bulletMarker = "- "
	scriptMarker = "Script:"
)

type parseState int

const (
	seekingHeader parseState = iota
	inBullets
	inScript
)

// Parse converts raw generated content into an ordered sequence of
// Records, one per recognized slide header. It is pure and deterministic:
// text before the first header is dropped, a section without a title gets
// FallbackTitle, and malformed lines degrade to empty fields instead of
// failing the whole sequence.
func Parse(raw string) []Record {
	var (
		records []Record
		current Record
		script  []string
	)
	state := seekingHeader

	flush := func() {
		if state == seekingHeader {
			return
		}
		if s := strings.TrimSpace(strings.Join(script, "\n")); s != "" {
			current.Script = s
		}
		if strings.TrimSpace(current.Title) == "" {
			current.Title = FallbackTitle
		}
		records = append(records, current)
		current = Record{}
		script = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		// A slide header always starts a new section, whatever the state
		if m := headerRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			current.Title = strings.TrimSpace(m[1])
			state = inBullets
			continue
		}

		switch state {
		case seekingHeader:
			// not part of any slide

		case inBullets:
			switch {
			case strings.HasPrefix(trimmed, titleMarker) && strings.TrimSpace(current.Title) == "":
				current.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, titleMarker))
			case strings.HasPrefix(trimmed, bulletMarker):
				if b := strings.TrimSpace(strings.TrimPrefix(trimmed, bulletMarker)); b != "" {
					current.Bullets = append(current.Bullets, b)
				}
			case strings.HasPrefix(trimmed, scriptMarker):
				state = inScript
				if rest := strings.TrimSpace(strings.TrimPrefix(trimmed, scriptMarker)); rest != "" {
					script = append(script, rest)
				}
			}

		case inScript:
			script = append(script, line)
		}
	}

	flush()
	return records
}
