package domain

// StaticFile is a file whose logical serving path differs from its location
// on disk.
type StaticFile struct {
	FilePath           string `json:"FilePath"`
	StaticWebAssetPath string `json:"StaticWebAssetPath"`
}

// ProjectFileRecord is the per-project payload emitted by the injected
// watch list target.
type ProjectFileRecord struct {
	Files       []string     `json:"Files"`
	StaticFiles []StaticFile `json:"StaticFiles"`
}

// WatchList maps a project path to the files that project contributes to the
// watch set. It is the wire shape of the evaluator's result file and only
// lives for the duration of a single resolve.
type WatchList map[string]ProjectFileRecord
