// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package storage resolves dataset locations and moves bytes in and out of
// them through github.com/viant/afs. Plain OS paths are converted to
// file:// URLs; any scheme registered with afs is accepted as is.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Service lists, reads, and writes objects at a location.
type Service interface {
	// List returns the regular files directly under location, sorted by
	// name. Subdirectories are not descended into or returned.
	List(ctx context.Context, location string) ([]storage.Object, error)

	// Download reads the full contents of object.
	Download(ctx context.Context, object storage.Object) ([]byte, error)

	// Upload replaces the object at location with data.
	Upload(ctx context.Context, location string, data []byte) error
}

// afsService is a Service implemented using github.com/viant/afs.
type afsService struct {
	fs afs.Service
}

// New constructs a Service backed by the default afs service.
func New() Service {
	return &afsService{fs: afs.New()}
}

// Normalize turns a relative or absolute OS path into a file:// URL.
// Locations that already carry a scheme are returned unchanged.
func Normalize(location string) (string, error) {
	if url.Scheme(location, "") != "" {
		return location, nil
	}
	if url.IsRelative(location) {
		abs, err := filepath.Abs(location)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", location, err)
		}
		location = abs
	}
	return url.ToFileURL(location), nil
}

// Join appends name to location, using URL joining when location carries a
// scheme and OS path joining otherwise.
func Join(location, name string) string {
	if url.Scheme(location, "") != "" {
		return url.Join(location, name)
	}
	return filepath.Join(location, name)
}

func (a *afsService) List(ctx context.Context, location string) ([]storage.Object, error) {
	norm, err := Normalize(location)
	if err != nil {
		return nil, err
	}
	exists, err := a.fs.Exists(ctx, norm)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", location, err)
	}
	if !exists {
		return nil, fmt.Errorf("listing %s: %w", location, os.ErrNotExist)
	}
	objects, err := a.fs.List(ctx, norm)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", location, err)
	}

	files := make([]storage.Object, 0, len(objects))
	for _, object := range objects {
		// afs reports the listed directory itself alongside its children.
		if object.IsDir() {
			continue
		}
		files = append(files, object)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})
	return files, nil
}

func (a *afsService) Download(ctx context.Context, object storage.Object) ([]byte, error) {
	data, err := a.fs.Download(ctx, object)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url.Path(object.URL()), err)
	}
	return data, nil
}

// Upload writes data to location, truncating any existing object there.
// Missing parent directories are created.
func (a *afsService) Upload(ctx context.Context, location string, data []byte) error {
	norm, err := Normalize(location)
	if err != nil {
		return err
	}
	if err := a.ensureParent(ctx, norm); err != nil {
		return fmt.Errorf("creating parent of %s: %w", location, err)
	}
	if err := a.fs.Upload(ctx, norm, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", location, err)
	}
	return nil
}

func (a *afsService) ensureParent(ctx context.Context, URL string) error {
	parent, _ := url.Split(URL, file.Scheme)
	exists, err := a.fs.Exists(ctx, parent)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return a.fs.Create(ctx, parent, file.DefaultDirOsMode, true)
}
