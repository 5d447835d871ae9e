package kanjiset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
)

var (
	// ErrInvalidCharID is returned when the code point can't be decoded from a stroke entry identifier.
	ErrInvalidCharID = errors.New("invalid character identifier")

	// ErrNoStrokeDatabase is returned when the stroke source has no root element.
	ErrNoStrokeDatabase = errors.New("empty stroke database")
)

// StrokeRecord holds the vector strokes of a single character.
type StrokeRecord struct {
	Char  rune
	Paths []string
}

// StrokeSet is the parsed KanjiVG stroke database.
// Entries are decoded one by one, in document order.
type StrokeSet struct {
	entries []*etree.Element
}

// strokePaths selects every path element below a stroke entry, regardless of the group nesting.
var strokePaths = etree.MustCompilePath(".//path")

// LoadStrokes opens the KanjiVG file found at path and parses it into a StrokeSet.
func LoadStrokes(path string) (*StrokeSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the stroke database: %w", err)
	}
	defer file.Close()

	return ReadStrokes(file)
}

// ReadStrokes parses a KanjiVG document into a StrokeSet.
func ReadStrokes(r io.Reader) (*StrokeSet, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("could not parse the stroke database: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoStrokeDatabase
	}

	return &StrokeSet{entries: root.ChildElements()}, nil
}

// Len returns the number of entries in the stroke database.
func (s *StrokeSet) Len() int {
	return len(s.entries)
}

// Record decodes the i-th entry of the stroke database.
func (s *StrokeSet) Record(i int) (StrokeRecord, error) {
	if i < 0 || i >= len(s.entries) {
		return StrokeRecord{}, fmt.Errorf("stroke entry index %d out of range [0, %d)", i, len(s.entries))
	}
	entry := s.entries[i]

	char, err := DecodeChar(entry.SelectAttrValue("id", ""))
	if err != nil {
		return StrokeRecord{}, err
	}

	elems := entry.FindElementsPath(strokePaths)
	paths := make([]string, 0, len(elems))
	for _, el := range elems {
		paths = append(paths, el.SelectAttrValue("d", ""))
	}

	return StrokeRecord{Char: char, Paths: paths}, nil
}

// DecodeChar extracts the character from a KanjiVG identifier like "kvg:kanji_04e00".
// The code point is the hexadecimal number following the last underscore.
func DecodeChar(id string) (rune, error) {
	hex := id[strings.LastIndex(id, "_")+1:]
	if hex == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharID, id)
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCharID, id, err)
	}
	char := rune(cp)
	if !utf8.ValidRune(char) {
		return 0, fmt.Errorf("%w: %q is not a valid code point", ErrInvalidCharID, id)
	}

	return char, nil
}
