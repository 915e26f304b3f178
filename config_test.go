package fwatch

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsIgnored 测试 isIgnored 函数
func TestIsIgnored(t *testing.T) {
	cfg := ConfigWatcher{
		IgnorePatterns: []string{"*.tmp", ".git", "build/*.o"},
	}

	cases := []struct {
		path   string
		ignore bool
	}{
		{"file.tmp", true},
		{"file.log", false},
		{"main.git", false},
		{".git", true},
		{"something/.git", true},
		{"dir/file.tmp", true},
		{"build/main.o", true},
		{"main.o", false},
		{"other/main.o", false},
	}

	for _, c := range cases {
		got := cfg.isIgnored(c.path)
		if got != c.ignore {
			t.Errorf("isIgnored(%s) = %v; want %v", c.path, got, c.ignore)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "fwatch.yaml")
	data := `watchPaths:
  - a.txt
  - b.tmp
ignorePatterns:
  - "*.tmp"
hashContent: true
`
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, ConfigWatcher{
		WatchPaths:     []string{"a.txt", "b.tmp"},
		IgnorePatterns: []string{"*.tmp"},
		HashContent:    true,
	}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("watchPaths: [unclosed"), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	pat := filepath.Join(dir, "pattern.yaml")
	require.NoError(t, os.WriteFile(pat, []byte("ignorePatterns: [\"[\"]\n"), 0644))
	_, err = LoadConfig(pat)
	assert.ErrorContains(t, err, "invalid ignore pattern")
}

func TestNewWatcherFromConfig(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.txt")
	skip := filepath.Join(dir, "skip.tmp")
	later := filepath.Join(dir, "later.txt")
	require.NoError(t, os.WriteFile(keep, []byte("v1"), 0644))
	require.NoError(t, os.WriteFile(skip, []byte("x"), 0644))

	w := NewWatcherFromConfig(ConfigWatcher{
		WatchPaths:     []string{keep, skip, later},
		IgnorePatterns: []string{"*.tmp"},
		HashContent:    true,
	})
	require.Equal(t, 2, w.Len())

	p, err := w.GetPath(1)
	require.NoError(t, err)
	assert.Equal(t, later, p)

	require.NoError(t, os.WriteFile(keep, []byte("v2"), 0644))
	require.NoError(t, os.WriteFile(later, []byte("new"), 0644))
	assert.Equal(t, []Transition{TransitionModified, TransitionCreated}, w.Watch())
}

// TestNewWatcherFromConfigUnreadable 注册时不可读的路径仍会注册并保留 Error 状态
func TestNewWatcherFromConfigUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	parent := filepath.Join(t.TempDir(), "locked")
	p := filepath.Join(parent, "a.txt")
	require.NoError(t, os.Mkdir(parent, 0755))
	require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	require.NoError(t, os.Chmod(parent, 0))
	t.Cleanup(func() { _ = os.Chmod(parent, 0755) })

	w := NewWatcherFromConfig(ConfigWatcher{WatchPaths: []string{p}})
	require.Equal(t, 1, w.Len())
	st, err := w.GetState(0)
	require.NoError(t, err)
	assert.Equal(t, ErrorState(), st)

	require.NoError(t, os.Chmod(parent, 0755))
	assert.Equal(t, []Transition{TransitionCreated}, w.Watch())
}
