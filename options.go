package id3v1

// Option configures behavior when opening files.
//
// Options use the functional options pattern:
//
//	tag, err := id3v1.OpenFile(f, id3v1.WithDisplayName("stream.mp3"))
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	displayName string // Name used in error messages and summaries
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithDisplayName sets the name used to identify the file in error
// messages and tag summaries.
//
// By default the file's path is used. This option matters mostly for
// OpenFile with handles whose name is unhelpful (pipes, temp files).
func WithDisplayName(name string) Option {
	return func(o *openOptions) {
		o.displayName = name
	}
}
