package domain

import (
	"encoding/binary"
	"slices"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// FileItem is one watched file together with the projects that contributed
// it. There is exactly one FileItem per absolute path across a result.
type FileItem struct {
	// FilePath is the absolute path of the file and the identity of the item.
	FilePath string

	// ContainingProjects lists the projects that reference the file, sorted
	// and free of duplicates.
	ContainingProjects []string

	// StaticWebAssetPath is the logical serving path for static assets.
	// Empty for plain files. The classification recorded at first sighting is
	// final; later sightings never change it.
	StaticWebAssetPath string
}

// FileSet is the merged, owner-tracked watch set keyed by absolute file path.
type FileSet map[string]*FileItem

// NewFileSet returns an empty file set.
func NewFileSet() FileSet {
	return make(FileSet)
}

// add records a sighting of path by project. The static asset path is only
// honored at the first sighting of the path.
func (s FileSet) add(path, project, staticAssetPath string) {
	item, ok := s[path]
	if !ok {
		s[path] = &FileItem{
			FilePath:           path,
			ContainingProjects: []string{project},
			StaticWebAssetPath: staticAssetPath,
		}
		return
	}

	idx, found := slices.BinarySearch(item.ContainingProjects, project)
	if found {
		return
	}
	item.ContainingProjects = slices.Insert(item.ContainingProjects, idx, project)
}

// Merge folds a watch list into the set. Projects are merged in ascending
// lexical order of project path so that first-sighting outcomes do not depend
// on map iteration order. Merging the same list twice is a no-op beyond the
// first application.
func (s FileSet) Merge(list WatchList) {
	projects := make([]string, 0, len(list))
	for project := range list {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	for _, project := range projects {
		record := list[project]
		for _, file := range record.Files {
			s.add(file, project, "")
		}
		for _, static := range record.StaticFiles {
			s.add(static.FilePath, project, static.StaticWebAssetPath)
		}
	}
}

// Paths returns the watched file paths in sorted order.
func (s FileSet) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Fingerprint digests the set into a stable 64-bit value. Two sets with the
// same items, owners and static asset paths produce the same fingerprint, so
// the watch loop can cheaply detect that a re-evaluation changed nothing.
func (s FileSet) Fingerprint() uint64 {
	digest := xxhash.New()
	var sizeBuf [8]byte

	writeField := func(field string) {
		binary.LittleEndian.PutUint64(sizeBuf[:], uint64(len(field)))
		_, _ = digest.Write(sizeBuf[:])
		_, _ = digest.WriteString(field)
	}

	for _, path := range s.Paths() {
		item := s[path]
		writeField(item.FilePath)
		writeField(item.StaticWebAssetPath)
		for _, project := range item.ContainingProjects {
			writeField(project)
		}
	}
	return digest.Sum64()
}
