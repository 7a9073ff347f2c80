package assets

import "github.com/yawik/modsync/pkg/types"

// Summary messages of an install report
const (
	MsgErrors       = "Some errors occurred while installing assets."
	MsgCopyAdvisory = "Some assets were installed via copy. If you make changes to these assets you have to run this command again."
	MsgAllInstalled = "All assets were successfully installed."
	MsgNoAssets     = "No assets were provided by any module."
)

// SummaryKind classifies a summary line for rendering
type SummaryKind string

const (
	SummaryError   SummaryKind = "error"
	SummaryNote    SummaryKind = "note"
	SummarySuccess SummaryKind = "success"
)

// SummaryLine is one line of the report footer
type SummaryLine struct {
	Kind SummaryKind `json:"kind"`
	Text string      `json:"text"`
}

// Report is the outcome of an Install call
type Report struct {
	// Results holds one entry per requested module, in request order
	Results []types.PublishResult
	// ExitCode is 1 when at least one module failed, 0 otherwise
	ExitCode int
	// CopyUsed is set when any module was published by copy, so later
	// changes to its sources need another run
	CopyUsed bool
}

func (r *Report) add(result types.PublishResult) {
	r.Results = append(r.Results, result)
	if result.Outcome == types.OutcomeError {
		r.ExitCode = 1
	}
	if result.Method == types.MethodCopy {
		r.CopyUsed = true
	}
}

// Failed reports whether any module could not be published
func (r *Report) Failed() bool {
	return r != nil && r.ExitCode != 0
}

// Empty reports whether no module was requested
func (r *Report) Empty() bool {
	return r == nil || len(r.Results) == 0
}

// Count returns the number of results with the given outcome
func (r *Report) Count(outcome types.Outcome) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Summary returns the footer lines: a single error line on failure,
// otherwise the copy advisory when relevant followed by a success line.
func (r *Report) Summary() []SummaryLine {
	if r.Failed() {
		return []SummaryLine{{Kind: SummaryError, Text: MsgErrors}}
	}

	var lines []SummaryLine
	if r != nil && r.CopyUsed {
		lines = append(lines, SummaryLine{Kind: SummaryNote, Text: MsgCopyAdvisory})
	}
	if r.Empty() {
		return append(lines, SummaryLine{Kind: SummarySuccess, Text: MsgNoAssets})
	}
	return append(lines, SummaryLine{Kind: SummarySuccess, Text: MsgAllInstalled})
}
