// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fsfile turns the file: URIs of a remote repository into
// path-like values a file browser can walk.
package fsfile

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

const Scheme = "file"

var (
	ErrNotFileURI = errors.New("fsfile: not a file URI")
	ErrEmptyPath  = errors.New("fsfile: empty path")
)

// File is one entry of a repository. Paths always use forward slashes and
// are absolute.
type File struct {
	path string
	dir  bool
}

// Parse reads a file: URI. A trailing slash marks a directory.
func Parse(raw string) (*File, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("fsfile: parse %q: %w", raw, err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		return nil, fmt.Errorf("%w: %q", ErrNotFileURI, raw)
	}
	if u.Host != "" && u.Host != "localhost" {
		return nil, fmt.Errorf("%w: remote host %q", ErrNotFileURI, u.Host)
	}

	p := u.Path
	if p == "" {
		// file:relative/path
		p = u.Opaque
	}
	if p == "" {
		return nil, ErrEmptyPath
	}
	return newFile(p, strings.HasSuffix(p, "/")), nil
}

// FromPath builds the entry name inside dir, the way repository files are
// stored: a directory path and a file name.
func FromPath(dir, name string) (*File, error) {
	if strings.TrimSpace(dir) == "" && strings.TrimSpace(name) == "" {
		return nil, ErrEmptyPath
	}
	if name == "" {
		return newFile(dir, true), nil
	}
	return newFile(path.Join(filepath.ToSlash(dir), name), false), nil
}

func newFile(p string, dir bool) *File {
	p = path.Clean("/" + filepath.ToSlash(p))
	return &File{path: p, dir: dir || p == "/"}
}

// Path returns the path with the separators of the local system.
func (f *File) Path() string { return filepath.FromSlash(f.path) }

// Name is the last element of the path; the root is named "/".
func (f *File) Name() string { return path.Base(f.path) }

func (f *File) IsDir() bool { return f.dir }

// Parent returns the directory holding f, or nil for the root.
func (f *File) Parent() *File {
	if f.path == "/" {
		return nil
	}
	return newFile(path.Dir(f.path), true)
}

// Child returns the entry name inside f.
func (f *File) Child(name string, dir bool) (*File, error) {
	if !f.dir {
		return nil, fmt.Errorf("fsfile: %s is not a directory", f.path)
	}
	if name == "" || strings.Contains(name, "/") || name == "." || name == ".." {
		return nil, fmt.Errorf("fsfile: invalid name %q", name)
	}
	return newFile(path.Join(f.path, name), dir), nil
}

// URI formats f back into a file: URI.
func (f *File) URI() string {
	p := f.path
	if f.dir && p != "/" {
		p += "/"
	}
	u := url.URL{Scheme: Scheme, Path: p}
	return u.String()
}

func (f *File) String() string { return f.URI() }
