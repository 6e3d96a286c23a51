package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/danielnarey/modular-ui/pkg/dom"
	"github.com/danielnarey/modular-ui/pkg/render"
)

// Store is a destination for published pages.
type Store interface {
	// Put writes one object under the given key.
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// Publisher renders elements and writes the HTML to a Store.
type Publisher struct {
	store    Store
	renderer *render.Renderer
}

// New creates a Publisher backed by the given store.
func New(store Store) *Publisher {
	return &Publisher{
		store:    store,
		renderer: render.New(render.Config{Pretty: true}),
	}
}

// Page renders an element tree and publishes it under the given key.
func (p *Publisher) Page(ctx context.Context, key string, root dom.Element) error {
	p.renderer.Reset()
	html, err := p.renderer.ToString(root.Render())
	if err != nil {
		return errors.Wrapf(err, "publish: rendering %s", key)
	}
	return p.HTML(ctx, key, html)
}

// HTML publishes pre-rendered HTML under the given key.
func (p *Publisher) HTML(ctx context.Context, key, html string) error {
	if err := p.store.Put(ctx, key, "text/html; charset=utf-8", []byte(html)); err != nil {
		return errors.Wrapf(err, "publish: storing %s", key)
	}
	return nil
}

// DirStore writes published pages into a local directory, creating
// intermediate directories as needed.
type DirStore struct {
	root string
}

// NewDirStore creates a DirStore rooted at the given directory.
func NewDirStore(root string) *DirStore {
	return &DirStore{root: root}
}

// Put implements Store.
func (s *DirStore) Put(_ context.Context, key, _ string, body []byte) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
