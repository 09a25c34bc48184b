package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of loaded sprite and background
// images so that classes sharing an image file decode it once.
//
// The cache stores decoded image.Image objects keyed by their resolved file
// path. Cached images are never modified by this package; every transform
// returns a new image.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewImageCache("/maps/sprites")
//	img, err := cache.Load("cruiser.gif")
//	if err != nil {
//	    return err
//	}
type ImageCache struct {
	mu     sync.RWMutex
	dir    string
	images map[string]image.Image
}

// NewImageCache creates an empty cache. Relative paths passed to Load are
// resolved against dir when dir is not empty.
func NewImageCache(dir string) *ImageCache {
	return &ImageCache{
		dir:    dir,
		images: make(map[string]image.Image),
	}
}

// Resolve returns the path Load would read for name.
func (c *ImageCache) Resolve(name string) string {
	if c.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.dir, name)
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Supported formats are PNG, JPEG and GIF. Only the first frame of an
// animated GIF is used.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid PNG, JPEG, or GIF image
func (c *ImageCache) Load(name string) (image.Image, error) {
	path := c.Resolve(name)

	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its name.
//
// If the image is not in the cache, this method does nothing.
func (c *ImageCache) Evict(name string) {
	c.mu.Lock()
	delete(c.images, c.Resolve(name))
	c.mu.Unlock()
}
