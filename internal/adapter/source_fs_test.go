package adapter

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "github.com/pine-marten/cppstat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFS_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFS()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.cpp"), "int main() {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.cpp")
		writeTestFile(t, child, "void child() {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() {
				visited = append(visited, path)
			}
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, filepath.Join(root, "main.cpp")), "Walk() did not visit top-level file")
		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file")
	})

	t.Run("SkipDir prunes a subtree", func(t *testing.T) {
		adapter := NewLocalSourceFS()

		root := t.TempDir()
		skipped := filepath.Join(root, "external")
		mustMkdir(t, skipped)
		writeTestFile(t, filepath.Join(skipped, "vendored.cpp"), "int v;\n")
		writeTestFile(t, filepath.Join(root, "kept.cpp"), "int k;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() && path == skipped {
				return fs.SkipDir
			}
			if !entry.IsDir() {
				visited = append(visited, path)
			}
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, filepath.Join(root, "kept.cpp")))
		assert.False(t, containsPath(visited, filepath.Join(skipped, "vendored.cpp")), "Walk() descended into skipped dir")
	})
}

func TestLocalSourceFS_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFS()

	root := t.TempDir()
	path := filepath.Join(root, "raw.cpp")
	content := []byte("line one\r\nline two\n")
	writeTestBytes(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, got, "ReadFile must not rewrite bytes")
}

func TestLocalSourceFS_ReadText(t *testing.T) {
	t.Run("normalizes CRLF to LF", func(t *testing.T) {
		adapter := NewLocalSourceFS()

		root := t.TempDir()
		path := filepath.Join(root, "dos.cpp")
		writeTestFile(t, path, "int a;\r\nint b;\r\n")

		got, err := adapter.ReadText(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, "int a;\nint b;\n", got)
	})

	t.Run("substitutes replacement char for invalid UTF-8", func(t *testing.T) {
		adapter := NewLocalSourceFS()

		root := t.TempDir()
		path := filepath.Join(root, "mojibake.cpp")
		writeTestBytes(t, path, []byte{'a', 0xff, 'b', '\n'})

		got, err := adapter.ReadText(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, "a�b\n", got)
	})

	t.Run("missing file errors", func(t *testing.T) {
		adapter := NewLocalSourceFS()

		_, err := adapter.ReadText(m.Path(filepath.Join(t.TempDir(), "gone.cpp")))
		assert.Error(t, err)
	})
}

func TestLocalSourceFS_Stat(t *testing.T) {
	adapter := NewLocalSourceFS()

	root := t.TempDir()
	path := filepath.Join(root, "file.cpp")
	writeTestFile(t, path, "int x;\n")

	dirInfo, err := adapter.Stat(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())

	fileInfo, err := adapter.Stat(m.Path(path))
	require.NoError(t, err)
	assert.False(t, fileInfo.IsDir())

	_, err = adapter.Stat(m.Path(filepath.Join(root, "gone")))
	assert.Error(t, err)
}

func TestLocalSourceFS_Rel(t *testing.T) {
	adapter := NewLocalSourceFS()

	rel, err := adapter.Rel(m.Path(filepath.Join("a", "b")), m.Path(filepath.Join("a", "b", "c", "d.cpp")))
	require.NoError(t, err)

	assert.Equal(t, m.Path(filepath.Join("c", "d.cpp")), rel)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		label string
		input []byte
		want  string
	}{
		{"plain ascii untouched", []byte("int main() {}\n"), "int main() {}\n"},
		{"crlf becomes lf", []byte("a\r\nb\r\n"), "a\nb\n"},
		{"lone cr survives", []byte("a\rb"), "a\rb"},
		{"invalid run collapses to one replacement", []byte{'x', 0xfe, 0xff, 'y'}, "x�y"},
		{"valid multibyte preserved", []byte("héllo\n"), "héllo\n"},
	}

	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			assert.Equal(t, test.want, NormalizeText(test.input))
		})
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
