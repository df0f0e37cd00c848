// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package upload stores cover images and other assets posted by the owner and
serves them back under the public /uploads/ prefix.

Files are written to an [afero.Fs] so tests run against memory and production
against the OS directory configured by UPLOAD_DIR. Stored assets are never
removed; an entity write that fails after its upload leaves the file behind.
*/
package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/ratings/internal/platform/constants"
)

// Asset describes a stored upload.
type Asset struct {
	Name        string
	Path        string
	ContentType string
	Size        int
}

// Store writes uploads into a directory of an [afero.Fs].
type Store struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewStore constructs a [Store] rooted at dir.
func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir, now: time.Now}
}

// WithClock replaces the time source used for name prefixes.
func (store *Store) WithClock(now func() time.Time) *Store {
	store.now = now
	return store
}

// Dir returns the storage root.
func (store *Store) Dir() string { return store.dir }

// FS returns the underlying file system.
func (store *Store) FS() afero.Fs { return store.fs }

/*
Save writes src under a name of the form {epoch-millis}-{sanitized-name}.

The directory is created on first use. The content type is sniffed from the
bytes, not taken from the client.
*/
func (store *Store) Save(originalName string, src io.Reader) (Asset, error) {
	content, err := io.ReadAll(src)
	if err != nil {
		return Asset{}, fmt.Errorf("upload: read: %w", err)
	}

	if err := store.fs.MkdirAll(store.dir, 0o755); err != nil {
		return Asset{}, fmt.Errorf("upload: create dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", store.now().UnixMilli(), SanitizeName(originalName))
	if err := afero.WriteFile(store.fs, path.Join(store.dir, name), content, 0o644); err != nil {
		return Asset{}, fmt.Errorf("upload: write %s: %w", name, err)
	}

	return Asset{
		Name:        name,
		Path:        constants.UploadURLPrefix + name,
		ContentType: mimetype.Detect(content).String(),
		Size:        len(content),
	}, nil
}

// fallbackName replaces names that sanitize to nothing usable.
const fallbackName = "upload"

/*
SanitizeName makes a client file name safe to store.

# Rules
  - Unicode is normalised to NFC.
  - Any directory part is dropped, for both / and \ separators.
  - Every whitespace rune becomes an underscore.
*/
func SanitizeName(name string) string {
	name = norm.NFC.String(name)

	if index := strings.LastIndexAny(name, `/\`+string(os.PathSeparator)); index >= 0 {
		name = name[index+1:]
	}

	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)

	if name == "" || name == "." || name == ".." {
		return fallbackName
	}
	return name
}
