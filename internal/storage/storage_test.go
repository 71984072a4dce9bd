package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcgen/internal/config"
	"tcgen/internal/domain"
)

func sampleCatalog() *domain.Catalog {
	return &domain.Catalog{
		Cases: []domain.TestCase{
			{Function: "foo", Plugins: []string{"CPU"}, Description: "basic cpu test", FilePath: "a.c"},
			{Function: "bar", Plugins: []string{"ALL"}, Description: "runs everywhere", FilePath: "a.c"},
			{Function: "qux", Plugins: []string{"LINUX_RT"}, Description: "linux specific", FilePath: "b.c"},
		},
		Suites: []domain.Suite{
			{Plugin: "CPU", Tests: []int{0, 1}},
			{Plugin: "LINUX_RT", Tests: []int{1, 2}},
		},
	}
}

func TestNewOutput(t *testing.T) {
	out := NewOutput(sampleCatalog(), []string{"a.c", "b.c"})

	assert.Equal(t, 3, out.Meta.TotalCases)
	assert.Equal(t, 2, out.Meta.TotalPlugins)
	assert.Equal(t, []string{"a.c", "b.c"}, out.Meta.Files)
	assert.NotEmpty(t, out.Meta.Timestamp)
	require.Len(t, out.Registry, 2)
	assert.Equal(t, domain.SuiteEntry{Plugin: "LINUX_RT", DisplayName: "LINUX-RT", Tests: []int{1, 2}, Count: 2}, out.Registry[1])

	empty := NewOutput(&domain.Catalog{}, nil)
	assert.NotNil(t, empty.Cases)
	assert.Empty(t, empty.Registry)
}

func TestStorage_RoundTrip(t *testing.T) {
	for _, format := range []string{config.FormatJSON, config.FormatMsgpack} {
		t.Run(format, func(t *testing.T) {
			cfg := config.New()
			cfg.OutputDir = t.TempDir()
			cfg.Flags.Format = format

			st, err := New(cfg)
			require.NoError(t, err)

			cat := sampleCatalog()
			require.NoError(t, st.Save(cat, []string{"a.c", "b.c"}))
			assert.FileExists(t, filepath.Join(cfg.OutputDir, "catalog."+format))

			loaded, err := st.Load()
			require.NoError(t, err)
			if diff := cmp.Diff(cat, loaded.Catalog()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 3, loaded.Meta.TotalCases)

			loaded.Meta.Files = []string{"c.c"}
			require.NoError(t, st.SaveOutput(loaded))
			again, err := st.Load()
			require.NoError(t, err)
			assert.Equal(t, []string{"c.c"}, again.Meta.Files)
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	cfg := config.New()
	cfg.Flags.Format = "xml"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.SnapshotFormat = config.FormatJSON

	packed := filepath.Join(dir, "saved.msgpack")
	writer := config.New()
	writer.Flags.Output = packed
	writer.Flags.Format = config.FormatMsgpack
	require.NoError(t, NewMsgpackStorage(writer).Save(sampleCatalog(), nil))

	t.Run("format follows extension", func(t *testing.T) {
		st, err := Open(cfg, packed)
		require.NoError(t, err)
		assert.IsType(t, &MsgpackStorage{}, st)

		loaded, err := st.Load()
		require.NoError(t, err)
		if diff := cmp.Diff(sampleCatalog(), loaded.Catalog()); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown extension uses configured format", func(t *testing.T) {
		st, err := Open(cfg, filepath.Join(dir, "saved.bin"))
		require.NoError(t, err)
		assert.IsType(t, &JSONStorage{}, st)
	})

	t.Run("config is not modified", func(t *testing.T) {
		_, err := Open(cfg, packed)
		require.NoError(t, err)
		assert.Empty(t, cfg.Flags.Output)
		assert.Empty(t, cfg.Flags.Format)
	})
}

func TestStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.Flags.Output = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewJSONStorage(cfg).Load()
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "catalog.c")

	require.NoError(t, WriteFileAtomic(path, []byte("first")))
	require.NoError(t, WriteFileAtomic(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}
