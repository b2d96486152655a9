package source

import "context"

// Kind classifies a user-supplied reference.
type Kind int

const (
	KindInvalid Kind = iota
	KindFile
	KindDirectory
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindRemote:
		return "remote"
	default:
		return "invalid"
	}
}

// Reference is the raw user input together with its resolved kind.
type Reference struct {
	Raw  string
	Kind Kind
}

// Document is one source paper. Remote documents are downloaded lazily by
// Path so that a failed download only affects that document.
type Document struct {
	// Name identifies the document in logs: a file path or a URL.
	Name  string
	fetch func(ctx context.Context) (string, error)
}

// Path returns the local PDF path, downloading the document first if needed.
func (d Document) Path(ctx context.Context) (string, error) {
	if d.fetch == nil {
		return d.Name, nil
	}
	return d.fetch(ctx)
}

// IsRemote reports whether the document is downloaded on demand.
func (d Document) IsRemote() bool {
	return d.fetch != nil
}

// Local returns a Document backed by a file already on disk.
func Local(path string) Document {
	return Document{Name: path}
}

// Remote returns a Document whose local file is produced by fetch.
func Remote(name string, fetch func(ctx context.Context) (string, error)) Document {
	return Document{Name: name, fetch: fetch}
}

// Resolver turns user input into the documents to process.
type Resolver interface {
	// Resolve accepts a PDF path, a directory, or a supported URL.
	Resolve(ctx context.Context, input string) ([]Document, error)
	// ResolveRemote accepts only supported URLs.
	ResolveRemote(ctx context.Context, rawURL string) ([]Document, error)
}
