package core

// Note is the central entity of the domain.
// It represents a single converted note, identified by the numeric ID
// taken from its filename. Notes are transient: built per file, discarded
// once the output file is written.
type Note struct {
	ID       string
	Title    string
	Date     string
	Tags     []string
	Metadata *Metadata // Front matter, in emission order
	Content  string    // The body, after link rewriting
}
