package resource

// Pagination carries the page references extracted from a document's
// top-level navigation links. Each field is optional; empty means the
// document did not provide that link.
type Pagination struct {
	First string
	Last  string
	Prev  string
	Next  string
}

// IsZero reports whether no page reference was present at all.
func (p Pagination) IsZero() bool {
	return p == Pagination{}
}
