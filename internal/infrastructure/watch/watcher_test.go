package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSceneFile(t *testing.T) {
	assert.True(t, IsSceneFile("scenes/scene1.json"))
	assert.True(t, IsSceneFile("SCENE.JSON"))
	assert.False(t, IsSceneFile("settings.yaml"))
	assert.False(t, IsSceneFile("scenes/scene1.json.swp"))
	assert.False(t, IsSceneFile("scenes"))
}

func TestSameScene(t *testing.T) {
	assert.True(t, SameScene("/tmp/cfg/scenes/scene1.json", "scene1.json"))
	assert.True(t, SameScene("/tmp/cfg/scenes/room.json", "levels/room.json"))
	assert.False(t, SameScene("/tmp/cfg/scenes/scene2.json", "scene1.json"))
}

func TestWatcher_ReportsSceneWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// Non-scene files are filtered out
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	target := filepath.Join(dir, "scene1.json")
	require.NoError(t, os.WriteFile(target, []byte(`{"elements":[]}`), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for scene write")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Empty(t, w.Poll())
}

func TestDebouncer_ReportsAfterLastTouch(t *testing.T) {
	quit := make(chan struct{})
	defer close(quit)
	d := newDebouncer(200*time.Millisecond, quit)
	defer d.stop()

	d.touch("scene1.json")
	time.Sleep(100 * time.Millisecond)
	d.touch("scene1.json")

	select {
	case name := <-d.due:
		t.Fatalf("%s reported before it went quiet", name)
	case <-time.After(150 * time.Millisecond):
	}

	select {
	case name := <-d.due:
		assert.Equal(t, "scene1.json", name)
		d.done(name)
	case <-time.After(time.Second):
		t.Fatal("no report after the last touch")
	}

	select {
	case name := <-d.due:
		t.Fatalf("%s reported twice", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDebouncer_PathsAreIndependent(t *testing.T) {
	quit := make(chan struct{})
	defer close(quit)
	d := newDebouncer(20*time.Millisecond, quit)
	defer d.stop()

	d.touch("a.json")
	d.touch("b.json")

	var got []string
	for len(got) < 2 {
		select {
		case name := <-d.due:
			d.done(name)
			got = append(got, name)
		case <-time.After(time.Second):
			t.Fatalf("only got %v", got)
		}
	}
	assert.ElementsMatch(t, []string{"a.json", "b.json"}, got)
}

func TestWatcher_TruncateThenWriteReportsFinalContent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scene1.json")
	require.NoError(t, os.WriteFile(target, []byte(`{"elements":[]}`), 0o644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// Editors often truncate first and write the content right after
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_TRUNC, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"elements":[{"x":1}]}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, `{"elements":[{"x":1}]}`, string(data))
	case <-time.After(3 * time.Second):
		t.Fatal("no event for scene write")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("%s reported twice for one save", name)
	case <-time.After(3 * DebounceInterval):
	}
}
