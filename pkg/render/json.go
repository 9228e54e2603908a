package render

import (
	"encoding/json"
	"io"

	"github.com/agriscope/agriscope/pkg/scoring"
)

// JSONRenderer marshals a Result to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
