// Package assets resolves raw image references against the local image
// directory. An index is built once per pipeline run and passed to the
// builders that need it.
package assets

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// ItemImagePrefix is the public path local item images are served from.
const ItemImagePrefix = "/images/items/"

// ImageResolver maps a raw image reference to the value stored on an item.
type ImageResolver interface {
	Resolve(source string) string
}

// LocalImages is a snapshot of the file names in the local image directory.
type LocalImages struct {
	names map[string]struct{}
}

// NewLocalImages lists dir inside fsys. A missing directory yields an empty index.
func NewLocalImages(fsys fs.FS, dir string) (*LocalImages, error) {
	idx := &LocalImages{names: make(map[string]struct{})}
	if fsys == nil {
		return idx, nil
	}

	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			idx.names[e.Name()] = struct{}{}
		}
	}
	return idx, nil
}

// NewLocalImagesFromNames builds an index from explicit file names.
func NewLocalImagesFromNames(names ...string) *LocalImages {
	idx := &LocalImages{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		idx.names[n] = struct{}{}
	}
	return idx
}

// Len returns the number of indexed files.
func (l *LocalImages) Len() int {
	return len(l.names)
}

// Resolve returns the local public path when the reference's base name is a
// known local file, and the reference itself otherwise. Blank yields "".
func (l *LocalImages) Resolve(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}
	name := path.Base(strings.ReplaceAll(source, "\\", "/"))
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if _, ok := l.names[name]; ok {
		return ItemImagePrefix + name
	}
	return source
}
