package core

import (
	"encoding/json"
	"io"
)

// MarshalReports pretty-prints reports as JSON for humans or pipelines.
func MarshalReports(w io.Writer, reports []FileReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// UnmarshalReports decodes reports JSON, useful for ingestion tests.
func UnmarshalReports(r io.Reader) ([]FileReport, error) {
	var reports []FileReport
	if err := json.NewDecoder(r).Decode(&reports); err != nil {
		return nil, err
	}
	return reports, nil
}
