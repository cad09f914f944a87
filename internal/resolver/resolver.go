// Package resolver maps request paths to filesystem outcomes: file content,
// a rendered directory listing, or not-found.
package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies the outcome of a path resolution.
type Kind int

const (
	KindNotFound Kind = iota
	KindFile
	KindDirectory
)

// Resource is the result of resolving a request path.
type Resource struct {
	Kind Kind
	Body []byte
}

// Resolver looks up request paths on the local filesystem.
//
// Paths are used verbatim: no URL decoding, no normalization, and no
// confinement to the configured root. The root is recorded for startup
// logging only and is never consulted during lookup.
type Resolver struct {
	root string
}

// New creates a resolver for the given filesystem root.
func New(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the configured filesystem root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve looks up path and returns its content.
//
// Directories resolve to a rendered HTML listing of their direct entries and
// regular files to their full content. Missing paths, metadata failures,
// read failures after a successful stat, and special file types (sockets,
// devices, dangling links) all resolve to not-found.
func (r *Resolver) Resolve(ctx context.Context, path string) (*Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return &Resource{Kind: KindNotFound}, nil
	}

	switch {
	case info.IsDir():
		body, err := r.listDirectory(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			return &Resource{Kind: KindNotFound}, nil
		}
		return &Resource{Kind: KindDirectory, Body: body}, nil

	case info.Mode().IsRegular():
		content, err := os.ReadFile(path)
		if err != nil {
			return &Resource{Kind: KindNotFound}, nil
		}
		return &Resource{Kind: KindFile, Body: content}, nil

	default:
		return &Resource{Kind: KindNotFound}, nil
	}
}

// listDirectory renders the navigation page for a directory: one link per
// direct entry, with the entry's full path as target and its bare name as
// label. Enumeration is one level deep.
func (r *Resolver) listDirectory(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var links strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&links, "<a href=\"%s\">%s</a><br>", filepath.Join(path, entry.Name()), entry.Name())
	}

	page := fmt.Sprintf("<html><body><h1>%s</h1><br>%s</body></html>", path, links.String())
	return []byte(page), nil
}
