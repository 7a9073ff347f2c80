// Package ui renders modsync results for people and for machines.
// Terminal output colors the status glyphs and summary lines, text output
// is the same layout unstyled, and JSON output is meant for scripts.
package ui

import (
	"fmt"
	"io"

	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/permissions"
)

// InstallTitle heads the install report
const InstallTitle = "Module Assets Installed!"

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderInstall renders the per-module table and the summary lines
	RenderInstall(report *assets.Report) error

	// RenderUninstall renders the modules whose assets were removed
	RenderUninstall(removed []string) error

	// RenderStatus renders what is found at each module's target
	RenderStatus(statuses []assets.TargetStatus) error

	// RenderPermissions renders the outcome of a permission repair
	RenderPermissions(result *permissions.Result) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch ResolveFormat(format, output) {
	case FormatTerminal:
		return &tableRenderer{out: output, styled: true, glyphs: DefaultGlyphs()}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	case FormatText:
		return &tableRenderer{out: output, glyphs: DefaultGlyphs()}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// RenderInstallReport renders report to w in the given format
func RenderInstallReport(w io.Writer, report *assets.Report, format Format) error {
	renderer, err := NewRenderer(format, w)
	if err != nil {
		return err
	}
	return renderer.RenderInstall(report)
}
