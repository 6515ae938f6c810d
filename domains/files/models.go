package files

// Kind is the type of a directory entry as reported to the browser.
type Kind string

const (
	KindFile Kind = "file"
	KindDir  Kind = "dir"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Entry is one immediate child of a listed directory
type Entry struct {
	Name string
	Kind Kind
}
