package file

// TextExtractor pulls plain text out of a document on disk.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}
