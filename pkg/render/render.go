// Package render defines output rendering for Agriscope results.
// Implementations handle different output targets: terminal and JSON.
package render

import (
	"io"

	"github.com/agriscope/agriscope/pkg/scoring"
)

// Renderer produces formatted output from a recommendation Result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result *scoring.Result) error
}
