package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tcgen/internal/domain"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []domain.TestCase
	}{
		{
			name:    "single annotation",
			content: `TESTCASE(foo, CPU, "basic cpu test")`,
			expected: []domain.TestCase{
				{Function: "foo", Plugins: []string{"CPU"}, Description: "basic cpu test", FilePath: "a.c"},
			},
		},
		{
			name: "plugin list is split and trimmed",
			content: `TESTCASE(lock_fmlp, PSN_EDF | GSN_EDF |P_FP,
	 "FMLP acquisition and release")
{
	SYSCALL(od_open(fd, FMLP_SEM, 0));
}`,
			expected: []domain.TestCase{
				{Function: "lock_fmlp", Plugins: []string{"PSN_EDF", "GSN_EDF", "P_FP"}, Description: "FMLP acquisition and release", FilePath: "a.c"},
			},
		},
		{
			name:    "tag list and description span lines",
			content: "TESTCASE(\n  multi ,\n  C-EDF\n  |\n  PFAIR ,\n  \"first line\nsecond line\"\n)",
			expected: []domain.TestCase{
				{Function: "multi", Plugins: []string{"C-EDF", "PFAIR"}, Description: "first line\nsecond line", FilePath: "a.c"},
			},
		},
		{
			name:    "duplicate and reserved tags are kept",
			content: `TESTCASE(dup, ALL | CPU | CPU | LITMUS, "")`,
			expected: []domain.TestCase{
				{Function: "dup", Plugins: []string{"ALL", "CPU", "CPU", "LITMUS"}, Description: "", FilePath: "a.c"},
			},
		},
		{
			name: "annotations keep file order",
			content: `TESTCASE(b, X, "one") junk TESTCASE(a, Y, "two")
TESTCASE(c, Z, "three")`,
			expected: []domain.TestCase{
				{Function: "b", Plugins: []string{"X"}, Description: "one", FilePath: "a.c"},
				{Function: "a", Plugins: []string{"Y"}, Description: "two", FilePath: "a.c"},
				{Function: "c", Plugins: []string{"Z"}, Description: "three", FilePath: "a.c"},
			},
		},
		{
			name:     "missing comma",
			content:  `TESTCASE(foo CPU, "no comma")`,
			expected: []domain.TestCase{},
		},
		{
			name:     "unterminated quote",
			content:  `TESTCASE(foo, CPU, "never closed)`,
			expected: []domain.TestCase{},
		},
		{
			name:     "malformed tag character",
			content:  `TESTCASE(foo, CPU+GPU, "bad tag")`,
			expected: []domain.TestCase{},
		},
		{
			name:     "empty tag between pipes",
			content:  `TESTCASE(foo, CPU || GPU, "empty tag")`,
			expected: []domain.TestCase{},
		},
		{
			name:     "macro definition is not an annotation",
			content:  `#define TESTCASE(function, plugins, description) void test_ ## function (void)`,
			expected: []domain.TestCase{},
		},
		{
			name: "malformed text does not hide a later annotation",
			content: `TESTCASE(broken, CPU "x")
TESTCASE(ok, CPU, "fine")`,
			expected: []domain.TestCase{
				{Function: "ok", Plugins: []string{"CPU"}, Description: "fine", FilePath: "a.c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseSource("a.c", tt.content)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("ParseSource() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser(zap.NewNop())
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "fdso.c")
	content := `#include "tests.h"

TESTCASE(fmlp_not_active, C_EDF | PFAIR | LINUX,
	 "don't open FMLP semaphores if FMLP is not supported")
{
}

TESTCASE(invalid_od, ALL,
	 "reject invalid object descriptors")
{
}
`
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0644))

	t.Run("finds annotations", func(t *testing.T) {
		cases, err := parser.FindTestCases(testFile)
		require.NoError(t, err)
		require.Len(t, cases, 2)

		assert.Equal(t, "fmlp_not_active", cases[0].Function)
		assert.Equal(t, []string{"C_EDF", "PFAIR", "LINUX"}, cases[0].Plugins)
		assert.Equal(t, "invalid_od", cases[1].Function)
		assert.Equal(t, testFile, cases[1].FilePath)
	})

	t.Run("returns read error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases("/non/existent/file.c")
		require.Error(t, err)

		var readErr *ReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, "/non/existent/file.c", readErr.Path)
		assert.Equal(t, "no such file or directory", readErr.Message())
		assert.Equal(t, "/non/existent/file.c: no such file or directory", err.Error())
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

type recordingProgress struct {
	updates  [][2]int
	finished bool
}

func (r *recordingProgress) Update(files, cases int) {
	r.updates = append(r.updates, [2]int{files, cases})
}

func (r *recordingProgress) Finish() {
	r.finished = true
}

func TestParser_FindAll(t *testing.T) {
	parser := NewParser(zap.NewNop())
	tmpDir := t.TempDir()

	a := filepath.Join(tmpDir, "a.c")
	b := filepath.Join(tmpDir, "b.c")
	require.NoError(t, os.WriteFile(a, []byte(`TESTCASE(a1, X, "") TESTCASE(a2, Y, "")`), 0644))
	require.NoError(t, os.WriteFile(b, []byte(`TESTCASE(b1, X, "")`), 0644))

	t.Run("concatenates files in order", func(t *testing.T) {
		progress := &recordingProgress{}
		cases, err := parser.FindAll([]string{b, a}, progress)
		require.NoError(t, err)

		var names []string
		for _, tc := range cases {
			names = append(names, tc.Function)
		}
		assert.Equal(t, []string{"b1", "a1", "a2"}, names)
		assert.Equal(t, [][2]int{{1, 1}, {2, 3}}, progress.updates)
		assert.True(t, progress.finished)
	})

	t.Run("concatenation equals per-file results", func(t *testing.T) {
		both, err := parser.FindAll([]string{a, b}, nil)
		require.NoError(t, err)
		onlyA, err := parser.FindTestCases(a)
		require.NoError(t, err)
		onlyB, err := parser.FindTestCases(b)
		require.NoError(t, err)

		assert.Equal(t, append(onlyA, onlyB...), both)
	})

	t.Run("stops at first unreadable file", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "missing.c")
		cases, err := parser.FindAll([]string{a, missing, b}, nil)
		assert.Nil(t, cases)

		var readErr *ReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, missing, readErr.Path)
	})

	t.Run("no files", func(t *testing.T) {
		cases, err := parser.FindAll(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, cases)
	})
}
