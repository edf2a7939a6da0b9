package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/pkg/types"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	// Use in-memory database for testing
	storage, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NotNil(t, storage)
	return storage
}

// buildTestTree assembles a small hierarchy:
//
//	audio (namespace)
//	  Mixer (class)
//	    Gain (function)
//	    SetGain (function)
//	Compute (function)
func buildTestTree(t *testing.T) *hierarchy.Tree {
	tree := hierarchy.New()
	place := func(e *types.Entity) {
		_, err := tree.Place(e, tree.Root())
		require.NoError(t, err)
	}

	place(&types.Entity{
		QualifiedName:    "audio",
		Kind:             types.KindNamespace,
		Summary:          "Audio facilities.",
		DocText:          "Audio facilities.",
		SignatureDisplay: "namespace audio",
		Locations:        []types.Location{{File: "audio.h", Line: 3}},
	})
	place(&types.Entity{
		QualifiedName:    "audio::Mixer",
		Kind:             types.KindClass,
		Summary:          "Mixes channels.",
		DocText:          "Mixes channels.\n\nOwns the channel list.",
		SignatureDisplay: "class audio::Mixer",
		Locations:        []types.Location{{File: "audio.h", Line: 7}},
	})
	place(&types.Entity{
		QualifiedName:    "audio::Mixer::Gain",
		Kind:             types.KindFunction,
		Summary:          "Returns the gain.",
		SignatureDisplay: "float audio::Mixer::Gain() const",
		SignatureMinimal: "float audio::Mixer::Gain() const",
		Locations:        []types.Location{{File: "audio.h", Line: 12}},
	})
	place(&types.Entity{
		QualifiedName:    "audio::Mixer::SetGain",
		Kind:             types.KindFunction,
		Summary:          "Sets the gain.",
		SignatureDisplay: "void audio::Mixer::SetGain(float g)",
		SignatureMinimal: "void audio::Mixer::SetGain(float g)",
		Locations:        []types.Location{{File: "audio.h", Line: 16}, {File: "audio.cpp", Line: 42}},
	})
	place(&types.Entity{
		QualifiedName:    "Compute",
		Kind:             types.KindFunction,
		Summary:          "Computes a value.",
		SignatureDisplay: "int Compute(int x)",
		SignatureMinimal: "int Compute(int x)",
		Locations:        []types.Location{{File: "util.h", Line: 2}},
	})
	return tree
}

func createTestProject(t *testing.T, storage *SQLiteStorage) *Project {
	project := &Project{
		RootPath:     "/test/project",
		IndexVersion: "1.0.0",
	}
	require.NoError(t, storage.CreateProject(context.Background(), project))
	return project
}

func TestNewSQLiteStorage(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	assert.NotNil(t, storage)
	assert.NotNil(t, storage.db)
}

func TestCreateProject(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	project := createTestProject(t, storage)
	assert.Greater(t, project.ID, int64(0))
	assert.False(t, project.CreatedAt.IsZero())

	// Duplicate root path violates the unique constraint
	duplicate := &Project{RootPath: "/test/project", IndexVersion: "1.0.0"}
	err := storage.CreateProject(ctx, duplicate)
	assert.Error(t, err)
}

func TestGetProject(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	created := createTestProject(t, storage)

	got, err := storage.GetProject(ctx, "/test/project")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "/test/project", got.RootPath)
	assert.Equal(t, "1.0.0", got.IndexVersion)

	_, err = storage.GetProject(ctx, "/no/such/path")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProject(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	project := createTestProject(t, storage)

	project.TotalFiles = 3
	project.TotalEntities = 5
	project.LastIndexedAt = time.Now()
	require.NoError(t, storage.UpdateProject(ctx, project))

	got, err := storage.GetProject(ctx, "/test/project")
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalFiles)
	assert.Equal(t, 5, got.TotalEntities)
	assert.False(t, got.LastIndexedAt.IsZero())
}

func TestReplaceEntities(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	project := createTestProject(t, storage)

	count, err := storage.ReplaceEntities(ctx, project.ID, buildTestTree(t))
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Replacing again does not accumulate rows
	count, err = storage.ReplaceEntities(ctx, project.ID, buildTestTree(t))
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	top, err := storage.ListTopLevel(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "audio", top[0].Name)
	assert.Equal(t, "Compute", top[1].Name)
}

func TestGetEntityByPath(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	project := createTestProject(t, storage)
	_, err := storage.ReplaceEntities(ctx, project.ID, buildTestTree(t))
	require.NoError(t, err)

	record, err := storage.GetEntityByPath(ctx, project.ID, "audio::Mixer")
	require.NoError(t, err)
	assert.Equal(t, "Mixer", record.Name)
	assert.Equal(t, "audio", record.ParentPath)
	assert.Equal(t, types.KindClass, record.Kind)
	assert.Equal(t, "Mixes channels.", record.Summary)
	require.Len(t, record.Locations, 1)
	assert.Equal(t, "audio.h", record.Locations[0].File)
	assert.Equal(t, 7, record.Locations[0].Line)

	_, err = storage.GetEntityByPath(ctx, project.ID, "audio::NoSuch")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListChildrenOrder(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	project := createTestProject(t, storage)
	_, err := storage.ReplaceEntities(ctx, project.ID, buildTestTree(t))
	require.NoError(t, err)

	children, err := storage.ListChildren(ctx, project.ID, "audio::Mixer")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Gain", children[0].Name)
	assert.Equal(t, "SetGain", children[1].Name)

	// Multiple locations round-trip in insertion order
	require.Len(t, children[1].Locations, 2)
	assert.Equal(t, "audio.h", children[1].Locations[0].File)
	assert.Equal(t, "audio.cpp", children[1].Locations[1].File)
}

func TestSearchEntities(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	project := createTestProject(t, storage)
	_, err := storage.ReplaceEntities(ctx, project.ID, buildTestTree(t))
	require.NoError(t, err)

	results, err := storage.SearchEntities(ctx, project.ID, "gain", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Shorter path sorts first among name matches
	assert.Equal(t, "audio::Mixer::Gain", results[0].Path)
	assert.Equal(t, "audio::Mixer::SetGain", results[1].Path)

	// Summary matches are found too
	results, err = storage.SearchEntities(ctx, project.ID, "channels", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "audio::Mixer", results[0].Path)

	results, err = storage.SearchEntities(ctx, project.ID, "nomatch", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetStatus(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	project := createTestProject(t, storage)
	_, err := storage.ReplaceEntities(ctx, project.ID, buildTestTree(t))
	require.NoError(t, err)

	project.TotalFiles = 2
	project.TotalEntities = 5
	project.LastIndexedAt = time.Now()
	require.NoError(t, storage.UpdateProject(ctx, project))

	status, err := storage.GetStatus(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, status.ProjectID)
	assert.Equal(t, "/test/project", status.RootPath)
	assert.Equal(t, 2, status.TotalFiles)
	assert.Equal(t, 5, status.TotalEntities)
	assert.Equal(t, 3, status.EntitiesByKind[string(types.KindFunction)])
	assert.Equal(t, 1, status.EntitiesByKind[string(types.KindClass)])
	assert.Equal(t, CurrentSchemaVersion, status.SchemaVersion)
	assert.NotEmpty(t, status.BuildMode)

	_, err = storage.GetStatus(ctx, project.ID+99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMigrationsIdempotent(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	// A second application is a no-op
	err := ApplyMigrations(context.Background(), storage.db)
	assert.NoError(t, err)
}
