package output

import (
	"encoding/json"

	"github.com/investhome/savings-projector/internal/domain"
)

// JSONFormatter serializes the projection report as pretty-printed JSON.
var JSONFormatter = FormatterFunc{
	ID: "json",
	F: func(report *domain.ProjectionReport) ([]byte, error) {
		return json.MarshalIndent(report, "", "  ")
	},
}
