package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.refold.dev/refold/internal/core/domain"
)

func TestFileSet_Merge_TracksOwners(t *testing.T) {
	list := domain.WatchList{
		"/src/app/app.csproj": {
			Files: []string{"/src/app/Program.cs", "/src/lib/Shared.cs"},
		},
		"/src/lib/lib.csproj": {
			Files: []string{"/src/lib/Shared.cs"},
		},
	}

	set := domain.NewFileSet()
	set.Merge(list)

	require.Len(t, set, 2)

	shared := set["/src/lib/Shared.cs"]
	require.NotNil(t, shared)
	assert.Equal(t, []string{"/src/app/app.csproj", "/src/lib/lib.csproj"}, shared.ContainingProjects)

	program := set["/src/app/Program.cs"]
	require.NotNil(t, program)
	assert.Equal(t, []string{"/src/app/app.csproj"}, program.ContainingProjects)
}

func TestFileSet_Merge_Idempotent(t *testing.T) {
	list := domain.WatchList{
		"/src/app/app.csproj": {
			Files: []string{"/src/app/Program.cs"},
			StaticFiles: []domain.StaticFile{
				{FilePath: "/src/app/wwwroot/site.css", StaticWebAssetPath: "css/site.css"},
			},
		},
	}

	set := domain.NewFileSet()
	set.Merge(list)
	first := set.Fingerprint()

	set.Merge(list)

	require.Len(t, set, 2)
	assert.Equal(t, []string{"/src/app/app.csproj"}, set["/src/app/Program.cs"].ContainingProjects)
	assert.Equal(t, first, set.Fingerprint())
}

func TestFileSet_Merge_OwnerSetIndependentOfOrder(t *testing.T) {
	forward := domain.WatchList{
		"/src/a/a.csproj": {Files: []string{"/src/common/Util.cs"}},
		"/src/b/b.csproj": {Files: []string{"/src/common/Util.cs"}},
	}

	set := domain.NewFileSet()
	set.Merge(forward)

	item := set["/src/common/Util.cs"]
	require.NotNil(t, item)
	assert.Equal(t, []string{"/src/a/a.csproj", "/src/b/b.csproj"}, item.ContainingProjects)
}

func TestFileSet_Merge_StaticClassificationSticks(t *testing.T) {
	set := domain.NewFileSet()

	// First sighting classifies the file as a static asset.
	set.Merge(domain.WatchList{
		"/src/a/a.csproj": {
			StaticFiles: []domain.StaticFile{
				{FilePath: "/src/a/wwwroot/app.js", StaticWebAssetPath: "js/app.js"},
			},
		},
	})

	// A later plain sighting must not erase the logical path.
	set.Merge(domain.WatchList{
		"/src/b/b.csproj": {
			Files: []string{"/src/a/wwwroot/app.js"},
		},
	})

	item := set["/src/a/wwwroot/app.js"]
	require.NotNil(t, item)
	assert.Equal(t, "js/app.js", item.StaticWebAssetPath)
	assert.Equal(t, []string{"/src/a/a.csproj", "/src/b/b.csproj"}, item.ContainingProjects)
}

func TestFileSet_Fingerprint_StableAcrossMergeOrder(t *testing.T) {
	listA := domain.WatchList{"/src/a/a.csproj": {Files: []string{"/src/a/x.cs"}}}
	listB := domain.WatchList{"/src/b/b.csproj": {Files: []string{"/src/b/y.cs", "/src/a/x.cs"}}}

	forward := domain.NewFileSet()
	forward.Merge(listA)
	forward.Merge(listB)

	backward := domain.NewFileSet()
	backward.Merge(listB)
	backward.Merge(listA)

	assert.Equal(t, forward.Fingerprint(), backward.Fingerprint())
}

func TestFileSet_Fingerprint_ChangesWithContent(t *testing.T) {
	base := domain.NewFileSet()
	base.Merge(domain.WatchList{"/src/a/a.csproj": {Files: []string{"/src/a/x.cs"}}})

	grown := domain.NewFileSet()
	grown.Merge(domain.WatchList{"/src/a/a.csproj": {Files: []string{"/src/a/x.cs", "/src/a/y.cs"}}})

	assert.NotEqual(t, base.Fingerprint(), grown.Fingerprint())
}

func TestFileSet_Paths_Sorted(t *testing.T) {
	set := domain.NewFileSet()
	set.Merge(domain.WatchList{
		"/src/a/a.csproj": {Files: []string{"/src/z.cs", "/src/a.cs", "/src/m.cs"}},
	})

	assert.Equal(t, []string{"/src/a.cs", "/src/m.cs", "/src/z.cs"}, set.Paths())
}
