package fileutil

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// BinaryDetector decides whether a file should be excluded as non-text.
type BinaryDetector interface {
	IsBinary(path string) (bool, error)
}

// MimeDetector sniffs the head of a file and treats anything that does not
// descend from text/plain as binary.
type MimeDetector struct {
	fsys FileSystem
}

// NewMimeDetector returns a detector that reads files through fsys.
func NewMimeDetector(fsys FileSystem) *MimeDetector {
	return &MimeDetector{fsys: fsys}
}

// IsBinary implements BinaryDetector.
func (d *MimeDetector) IsBinary(path string) (bool, error) {
	f, err := d.fsys.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return false, fmt.Errorf("failed to detect content type of %s: %w", path, err)
	}
	return !IsText(mtype), nil
}

// IsText reports whether mtype or one of its ancestors is text/plain.
func IsText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
