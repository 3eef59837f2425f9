package server

import (
	docio "github.com/archigen/archigen/pkg/io"
	"github.com/archigen/archigen/pkg/pipeline"
)

// DiagramRequest is the body of the diagram, export, and validate
// endpoints: a diagram document plus pipeline options.
type DiagramRequest struct {
	docio.Document
	Options pipeline.Options `json:"options"`
}
