package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/permissions"
)

type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

type jsonResult struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Method  string `json:"method,omitempty"`
	Error   string `json:"error,omitempty"`
	Target  string `json:"target"`
}

type jsonReport struct {
	Results  []jsonResult         `json:"results"`
	ExitCode int                  `json:"exit_code"`
	CopyUsed bool                 `json:"copy_used"`
	Summary  []assets.SummaryLine `json:"summary"`
}

func (r *jsonRenderer) RenderInstall(report *assets.Report) error {
	out := jsonReport{Results: []jsonResult{}, Summary: []assets.SummaryLine{}}
	if report != nil {
		out.Summary = report.Summary()
		out.ExitCode = report.ExitCode
		out.CopyUsed = report.CopyUsed
		for _, res := range report.Results {
			jr := jsonResult{Name: res.Name, Outcome: string(res.Outcome), Method: res.Method.String(), Target: res.Target}
			if res.Err != nil {
				jr.Error = res.Err.Error()
			}
			out.Results = append(out.Results, jr)
		}
	}
	return r.encoder.Encode(out)
}

func (r *jsonRenderer) RenderUninstall(removed []string) error {
	if removed == nil {
		removed = []string{}
	}
	return r.encoder.Encode(map[string][]string{"removed": removed})
}

func (r *jsonRenderer) RenderStatus(statuses []assets.TargetStatus) error {
	if statuses == nil {
		statuses = []assets.TargetStatus{}
	}
	return r.encoder.Encode(map[string][]assets.TargetStatus{"modules": statuses})
}

type jsonPath struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Mode    string `json:"mode"`
	Created bool   `json:"created,omitempty"`
	Op      string `json:"op,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (r *jsonRenderer) RenderPermissions(result *permissions.Result) error {
	out := struct {
		Applied  []jsonPath `json:"applied"`
		Failures []jsonPath `json:"failures"`
	}{Applied: []jsonPath{}, Failures: []jsonPath{}}

	if result != nil {
		for _, a := range result.Applied {
			out.Applied = append(out.Applied, jsonPath{
				Path: a.Target.Path, Kind: string(a.Target.Kind), Mode: fmt.Sprintf("%#o", a.Target.Mode), Created: a.Created,
			})
		}
		for _, f := range result.Failures {
			out.Failures = append(out.Failures, jsonPath{
				Path: f.Target.Path, Kind: string(f.Target.Kind), Mode: fmt.Sprintf("%#o", f.Target.Mode), Op: f.Op, Error: f.Err.Error(),
			})
		}
	}
	return r.encoder.Encode(out)
}

func (r *jsonRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	entry := map[string]string{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		entry["code"] = string(code)
	}
	return r.encoder.Encode(entry)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
