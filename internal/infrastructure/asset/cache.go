// Package asset resolves image paths to decoded images in the background.
//
// Resolve never blocks: it hands back a Handle whose Ready flag flips once the
// image is decoded. Callers poll the flag at draw time and fall back to a plain
// box until then. Each path is decoded at most once per Cache.
package asset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"
	"sync/atomic"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// AssetResolutionError reports an image that could not be read or decoded
type AssetResolutionError struct {
	Path string
	Err  error
}

func (e *AssetResolutionError) Error() string {
	return fmt.Sprintf("resolve asset %s: %v", e.Path, e.Err)
}

func (e *AssetResolutionError) Unwrap() error {
	return e.Err
}

// Handle is a decoded image that may not be available yet
type Handle struct {
	path string
	done chan struct{}

	finished atomic.Bool
	img      image.Image
	err      error
}

func newHandle(path string) *Handle {
	return &Handle{path: path, done: make(chan struct{})}
}

// Path returns the resolved path of the image
func (h *Handle) Path() string {
	return h.path
}

// Ready reports whether the image decoded successfully
func (h *Handle) Ready() bool {
	return h.finished.Load() && h.err == nil
}

// Done reports whether loading finished, successfully or not
func (h *Handle) Done() bool {
	return h.finished.Load()
}

// Image returns the decoded image, or nil while loading or after a failure
func (h *Handle) Image() image.Image {
	if !h.Ready() {
		return nil
	}
	return h.img
}

// Err returns the *AssetResolutionError of a failed load
func (h *Handle) Err() error {
	if !h.finished.Load() {
		return nil
	}
	return h.err
}

// Wait blocks until loading finishes or ctx is done
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handle) finish(img image.Image, err error) {
	h.img = img
	h.err = err
	h.finished.Store(true)
	close(h.done)
}

// Cache maps resolved paths to handles
type Cache struct {
	fsys fs.FS

	mu      sync.Mutex
	handles map[string]*Handle
}

// NewCache creates a cache reading images from fsys
func NewCache(fsys fs.FS) *Cache {
	return &Cache{
		fsys:    fsys,
		handles: make(map[string]*Handle),
	}
}

// Resolve returns the handle for path, starting a background decode the
// first time the path is seen
func (c *Cache) Resolve(path string) *Handle {
	c.mu.Lock()
	h, ok := c.handles[path]
	if !ok {
		h = newHandle(path)
		c.handles[path] = h
	}
	c.mu.Unlock()

	if !ok {
		go h.finish(c.decode(path))
	}
	return h
}

// ResolveAll resolves every path and returns the handles keyed by path
func (c *Cache) ResolveAll(paths []string) map[string]*Handle {
	handles := make(map[string]*Handle, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		handles[p] = c.Resolve(p)
	}
	return handles
}

// Preload resolves the paths and waits until all of them finished.
// It returns the first resolution error.
func (c *Cache) Preload(ctx context.Context, paths ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, h := range c.ResolveAll(paths) {
		g.Go(func() error {
			return h.Wait(ctx)
		})
	}
	return g.Wait()
}

// Len returns the number of paths the cache has seen
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

func (c *Cache) decode(path string) (image.Image, error) {
	data, err := fs.ReadFile(c.fsys, path)
	if err != nil {
		return nil, &AssetResolutionError{Path: path, Err: err}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetResolutionError{Path: path, Err: err}
	}
	return img, nil
}
