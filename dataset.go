package kanjiset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dataset layout relative to the output directory.
const (
	TransparentDir     = "transparent"
	WhiteBackgroundDir = "white_background"
	MetadataFile       = "metadata.jsonl"
)

// DatasetRecord is a single line of the metadata file.
// FileName is relative to both image directories.
type DatasetRecord struct {
	FileName string   `json:"file_name"`
	Text     string   `json:"text"`
	Meanings []string `json:"meanings"`
}

// NewDatasetRecord returns the metadata record of a rendered character.
func NewDatasetRecord(char rune, meanings []string) DatasetRecord {
	return DatasetRecord{
		FileName: ImageName(char),
		Text:     string(char),
		Meanings: meanings,
	}
}

// ImageName returns the file name shared by both image variants of a character.
func ImageName(char rune) string {
	return string(char) + ".png"
}

// Layout resolves the paths of the generated dataset.
type Layout struct {
	Root string
}

// Transparent returns the path of the transparent background image of a character.
func (l Layout) Transparent(char rune) string {
	return filepath.Join(l.Root, TransparentDir, ImageName(char))
}

// WhiteBackground returns the path of the white background image of a character.
func (l Layout) WhiteBackground(char rune) string {
	return filepath.Join(l.Root, WhiteBackgroundDir, ImageName(char))
}

// Metadata returns the path of the metadata file.
func (l Layout) Metadata() string {
	return filepath.Join(l.Root, MetadataFile)
}

// Prepare creates the output directory tree.
func (l Layout) Prepare() error {
	for _, dir := range []string{
		l.Root,
		filepath.Join(l.Root, TransparentDir),
		filepath.Join(l.Root, WhiteBackgroundDir),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the output directory: %w", err)
		}
	}
	return nil
}

// MetadataWriter writes dataset records as newline delimited JSON.
type MetadataWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewMetadataWriter returns a MetadataWriter writing to w.
// Flush must be called once all the records are written.
func NewMetadataWriter(w io.Writer) *MetadataWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	return &MetadataWriter{w: bw, enc: enc}
}

// Write appends a record on its own line.
func (m *MetadataWriter) Write(rec DatasetRecord) error {
	if err := m.enc.Encode(rec); err != nil {
		return fmt.Errorf("unable to write the metadata of %q: %w", rec.Text, err)
	}
	return nil
}

// Flush writes any buffered record to the underlying writer.
func (m *MetadataWriter) Flush() error {
	return m.w.Flush()
}
