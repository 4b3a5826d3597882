package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.refold.dev/refold/internal/core/domain"
)

func TestParseWatchList(t *testing.T) {
	payload := []byte(`{
		"Projects": {
			"/src/app/app.csproj": {
				"Files": ["/src/app/Program.cs"],
				"StaticFiles": [
					{"FilePath": "/src/app/wwwroot/app.js", "StaticWebAssetPath": "js/app.js"}
				]
			}
		}
	}`)

	list, err := parseWatchList(payload)
	require.NoError(t, err)
	require.Len(t, list, 1)

	record := list["/src/app/app.csproj"]
	assert.Equal(t, []string{"/src/app/Program.cs"}, record.Files)
	require.Len(t, record.StaticFiles, 1)
	assert.Equal(t, "/src/app/wwwroot/app.js", record.StaticFiles[0].FilePath)
	assert.Equal(t, "js/app.js", record.StaticFiles[0].StaticWebAssetPath)
}

func TestParseWatchList_EmptyProjects(t *testing.T) {
	list, err := parseWatchList([]byte(`{"Projects": {}}`))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseWatchList_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"invalid json", `{"Projects": `},
		{"missing projects key", `{"Other": {}}`},
		{"null projects", `{"Projects": null}`},
		{"wrong projects type", `{"Projects": ["a", "b"]}`},
		{"empty document", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWatchList([]byte(tt.payload))
			assert.ErrorIs(t, err, domain.ErrMalformedWatchList)
		})
	}
}

func TestReadWatchList_MissingFile(t *testing.T) {
	_, err := readWatchList("/nonexistent/watchlist.json")
	assert.Error(t, err)
}
