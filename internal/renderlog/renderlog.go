package renderlog

import (
	"regexp"
	"sort"
)

// Line patterns. Each is searched within the line (leftmost match), never
// anchored to the start, so arbitrary prefix text before a marker is fine.
var (
	renderTimeRe   = regexp.MustCompile(`render done in (.*)$`)
	memorySampleRe = regexp.MustCompile(`\d{2}:\d{2}:\d{2} +\d+MB +\|`)
	timeElapsedRe  = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}) +\d+MB`)
	memoryLabelRe  = regexp.MustCompile(`\d{2}:\d{2}:\d{2} +(\d+MB)`)
	warningRe      = regexp.MustCompile(`WARNING(.*)`)
	errorRe        = regexp.MustCompile(`ERROR(.*)`)
)

// Report holds the facts extracted from one pass over a render log.
// The zero value is a valid empty report.
type Report struct {
	// RenderTime is the duration string from the last "render done in"
	// line, empty if the log never reported one.
	RenderTime string

	// Memory is the timeline of memory samples keyed by elapsed time.
	Memory Timeline

	// Warnings and Errors hold matching lines in file order, marker
	// included.
	Warnings []string
	Errors   []string
}

// Clone returns a deep copy that shares no storage with the receiver.
func (r Report) Clone() Report {
	out := Report{
		RenderTime: r.RenderTime,
		Memory:     r.Memory.clone(),
	}
	if r.Warnings != nil {
		out.Warnings = append([]string(nil), r.Warnings...)
	}
	if r.Errors != nil {
		out.Errors = append([]string(nil), r.Errors...)
	}
	return out
}

// Timeline maps elapsed-time labels (HH:MM:SS) to memory-usage labels
// (<digits>MB), preserving first-seen insertion order. A label that is
// already present keeps its original value; duplicate samples at the same
// timestamp never overwrite the first one.
type Timeline struct {
	order []string
	usage map[string]string
}

// add records a sample unless the elapsed label was already seen.
func (t *Timeline) add(elapsed, usage string) {
	if _, ok := t.usage[elapsed]; ok {
		return
	}
	if t.usage == nil {
		t.usage = make(map[string]string)
	}
	t.order = append(t.order, elapsed)
	t.usage[elapsed] = usage
}

// Lookup returns the usage label recorded for an elapsed-time label.
func (t Timeline) Lookup(elapsed string) (string, bool) {
	usage, ok := t.usage[elapsed]
	return usage, ok
}

// Times returns the elapsed-time labels in first-seen order.
func (t Timeline) Times() []string {
	if len(t.order) == 0 {
		return nil
	}
	return append([]string(nil), t.order...)
}

// SortedTimes returns the elapsed-time labels sorted lexicographically,
// which for HH:MM:SS labels equals chronological order. This is the order
// the memory table displays.
func (t Timeline) SortedTimes() []string {
	times := t.Times()
	sort.Strings(times)
	return times
}

// Len returns the number of recorded samples.
func (t Timeline) Len() int {
	return len(t.order)
}

func (t Timeline) clone() Timeline {
	if len(t.order) == 0 {
		return Timeline{}
	}
	out := Timeline{
		order: append([]string(nil), t.order...),
		usage: make(map[string]string, len(t.usage)),
	}
	for k, v := range t.usage {
		out.usage[k] = v
	}
	return out
}

// Parse scans lines once and accumulates a fresh Report. It is a pure
// function of its input: no state carries between calls, and it never fails
// regardless of log content. Lines that match no pattern contribute nothing.
// The rules are evaluated independently, so one line may feed several
// sections.
func Parse(lines []string) Report {
	var report Report
	for _, line := range lines {
		// Render time: the latest occurrence wins. An empty capture
		// ("render done in" with nothing after it) is ignored rather
		// than clearing a previously seen value.
		if m := renderTimeRe.FindStringSubmatch(line); m != nil && m[1] != "" {
			report.RenderTime = m[1]
		}

		// Memory sample: locate the "HH:MM:SS  <n>MB  |" fragment,
		// then pull the two labels out of the fragment itself.
		if fragment := memorySampleRe.FindString(line); fragment != "" {
			elapsed := timeElapsedRe.FindStringSubmatch(fragment)
			usage := memoryLabelRe.FindStringSubmatch(fragment)
			if elapsed != nil && usage != nil {
				report.Memory.add(elapsed[1], usage[1])
			}
		}

		if m := warningRe.FindString(line); m != "" {
			report.Warnings = append(report.Warnings, m)
		}
		if m := errorRe.FindString(line); m != "" {
			report.Errors = append(report.Errors, m)
		}
	}
	return report
}
