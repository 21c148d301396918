package openapi

import (
	"context"
	"io/fs"
)

// Loader reads a contract from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures loader behaviour.
type LoaderOptions struct {
	// FileSystem serves embedded sources. Defaults to the contracts compiled
	// into this package.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions during construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem replaces the filesystem used for embedded sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		if fsys != nil {
			opts.FileSystem = fsys
		}
	}
}

// NewLoaderOptions applies LoaderOption functions and returns the resulting
// configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{FileSystem: EmbeddedFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
