// Package feed ingests body records from the external data collaborator and
// assembles the scene registry. Malformed records are skipped and logged
// rather than aborting the load.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nkoval/orbitview/internal/scene"
)

// DefaultPeriod is used when a record carries no orbital period. The source
// behaviour fixed every period at 365 time units; records that do provide a
// real period override it.
const DefaultPeriod = 365.0

// Record is one body as supplied by the external feed.
type Record struct {
	Name     string         `json:"name"`
	Size     float64        `json:"size"`
	Distance float64        `json:"distance"`
	Period   float64        `json:"orbital_period,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Decode reads a JSON array of records, skipping elements that fail to
// decode so one bad entry cannot poison the batch.
func Decode(r io.Reader, log *slog.Logger) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("feed: decode: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, msg := range raw {
		var rec Record
		if err := json.Unmarshal(msg, &rec); err != nil {
			log.Warn("skipping malformed feed record", "index", i, "err", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadFile decodes records from a JSON file.
func LoadFile(path string, log *slog.Logger) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	defer f.Close()
	return Decode(f, log)
}

// BuildRegistry turns records into a populated registry. Records with
// missing or non-positive fields and duplicate names are skipped and logged;
// a record without a period gets defaultPeriod.
func BuildRegistry(records []Record, defaultPeriod float64, log *slog.Logger) *scene.Registry {
	if defaultPeriod <= 0 {
		defaultPeriod = DefaultPeriod
	}

	reg := scene.NewRegistry()
	for _, rec := range records {
		period := rec.Period
		if period == 0 {
			period = defaultPeriod
		}
		b, err := scene.NewBody(rec.Name, rec.Size, rec.Distance, period, rec.Metadata)
		if err != nil {
			log.Warn("skipping invalid feed record", "name", rec.Name, "err", err)
			continue
		}
		if err := reg.Add(b); err != nil {
			log.Warn("skipping duplicate feed record", "name", rec.Name, "err", err)
		}
	}
	return reg
}
