package resolver

import (
	"encoding/json"
	"os"

	"go.refold.dev/refold/internal/core/domain"
	"go.trai.ch/zerr"
)

// watchListDocument is the top-level shape of the evaluator's result file.
type watchListDocument struct {
	Projects domain.WatchList `json:"Projects"`
}

// parseWatchList decodes the result-file payload. The payload is produced by
// our own injected target, so a structural mismatch is a broken internal
// contract, reported as ErrMalformedWatchList rather than recovered from.
func parseWatchList(data []byte) (domain.WatchList, error) {
	var doc watchListDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(domain.ErrMalformedWatchList, "cause", err.Error())
	}
	if doc.Projects == nil {
		return nil, zerr.With(domain.ErrMalformedWatchList, "cause", "missing Projects object")
	}
	return doc.Projects, nil
}

// readWatchList reads and decodes the result file at path.
func readWatchList(path string) (domain.WatchList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read watch list file")
	}
	return parseWatchList(data)
}
