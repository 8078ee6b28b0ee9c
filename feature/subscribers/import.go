package subscribers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// importFile is the layout of a bulk import document:
//
//	subscribers:
//	  - firstname: Ada
//	    lastname: Lovelace
//	    email: ada@example.com
//	    servers: [NA1, EU2]
type importFile struct {
	Subscribers []Input `yaml:"subscribers"`
}

// Rejection records one import entry that failed validation.
type Rejection struct {
	Index  int    `json:"index"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// ImportReport summarizes a bulk import.
type ImportReport struct {
	Created  int         `json:"created"`
	Updated  int         `json:"updated"`
	Rejected []Rejection `json:"rejected"`
}

// ImportYAML upserts every subscriber of a YAML document. Invalid entries
// are reported and skipped; a storage failure stops the import.
func (s *Service) ImportYAML(ctx context.Context, r io.Reader) (*ImportReport, error) {
	var doc importFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	report := &ImportReport{}
	for i, in := range doc.Subscribers {
		_, created, err := s.Upsert(ctx, in)
		switch {
		case errors.Is(err, ErrInvalidSubscriber):
			report.Rejected = append(report.Rejected, Rejection{Index: i, Email: in.Email, Reason: err.Error()})
		case err != nil:
			return report, err
		case created:
			report.Created++
		default:
			report.Updated++
		}
	}
	return report, nil
}
