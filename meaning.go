package kanjiset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/beevik/etree"
)

// ErrMalformedDictionary is returned when a dictionary entry lacks a usable literal.
var ErrMalformedDictionary = errors.New("malformed dictionary entry")

// Paths inside a KANJIDIC2 character entry.
const (
	literalTag  = "literal"
	meaningPath = "reading_meaning/rmgroup/meaning"

	// langAttr qualifies non-English meanings. Its absence means English.
	langAttr = "m_lang"
)

// MeaningIndex maps a character to its English meanings.
// It is built once and is read-only afterwards.
type MeaningIndex struct {
	meanings map[rune][]string
	order    []rune
}

// LoadMeanings opens the KANJIDIC2 file found at path and extracts its meaning index.
func LoadMeanings(path string) (*MeaningIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the dictionary file: %w", err)
	}
	defer file.Close()

	return ReadMeanings(file)
}

// ReadMeanings parses a KANJIDIC2 document and extracts its meaning index.
func ReadMeanings(r io.Reader) (*MeaningIndex, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("could not parse the dictionary: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("could not parse the dictionary: %w", ErrMalformedDictionary)
	}

	return ExtractMeanings(root)
}

// ExtractMeanings walks the character entries found under root and collects
// the meanings which are not qualified by a language attribute.
// Characters without any English meaning are left out of the index.
func ExtractMeanings(root *etree.Element) (*MeaningIndex, error) {
	idx := &MeaningIndex{
		meanings: make(map[rune][]string),
	}

	for i, char := range root.SelectElements("character") {
		literal := char.SelectElement(literalTag)
		if literal == nil {
			return nil, fmt.Errorf("character entry #%d has no literal: %w", i, ErrMalformedDictionary)
		}
		text := literal.Text()
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError || size != len(text) {
			return nil, fmt.Errorf("character entry #%d has invalid literal %q: %w", i, text, ErrMalformedDictionary)
		}

		var meanings []string
		for _, meaning := range char.FindElements(meaningPath) {
			if meaning.SelectAttr(langAttr) != nil {
				continue
			}
			meanings = append(meanings, meaning.Text())
		}
		if len(meanings) == 0 {
			continue
		}

		if _, ok := idx.meanings[r]; !ok {
			idx.order = append(idx.order, r)
		}
		idx.meanings[r] = meanings
	}

	return idx, nil
}

// Lookup returns the meanings of the character and whether it has any.
func (idx *MeaningIndex) Lookup(char rune) ([]string, bool) {
	m, ok := idx.meanings[char]
	return m, ok
}

// Len returns the number of characters with at least one meaning.
func (idx *MeaningIndex) Len() int {
	return len(idx.order)
}

// Chars returns the indexed characters in dictionary order.
func (idx *MeaningIndex) Chars() []rune {
	chars := make([]rune, len(idx.order))
	copy(chars, idx.order)

	return chars
}
