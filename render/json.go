package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/svocheck/analyzer"
)

// JSONRenderer writes analysis results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the result as one JSON object.
func (r *JSONRenderer) Render(res analyzer.Result) {
	json.NewEncoder(r.W).Encode(res)
}

// ResultRenderer is implemented by the text and JSON renderers
type ResultRenderer interface {
	Render(res analyzer.Result)
}

// compile-time interface checks
var (
	_ ResultRenderer = (*JSONRenderer)(nil)
	_ ResultRenderer = (*Renderer)(nil)
)
