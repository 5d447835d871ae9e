package kanjiset

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/esimov/kanjiset/imop"
	"github.com/esimov/kanjiset/utils"
)

// Processor options
type Processor struct {
	OutputDir  string
	Rasterizer Rasterizer
	Spinner    *utils.Spinner
}

// Stats summarizes a dataset generation run.
type Stats struct {
	Entries  int // stroke database entries visited
	Rendered int // characters written to the dataset
	Skipped  int // characters without any English meaning
}

// Process is the main entry point of the dataset generation.
// It walks the stroke database in order and, for every character having
// at least one meaning, renders its transparent and white background images
// and appends its metadata record. The first error aborts the run.
func (p *Processor) Process(strokes *StrokeSet, meanings *MeaningIndex) (stats Stats, err error) {
	layout := Layout{Root: p.OutputDir}
	if err := layout.Prepare(); err != nil {
		return stats, err
	}

	file, err := os.Create(layout.Metadata())
	if err != nil {
		return stats, fmt.Errorf("unable to create the metadata file: %w", err)
	}
	metadata := NewMetadataWriter(file)

	// The records written before an aborted run must still reach the file,
	// so the metadata always lists the characters having an image pair.
	defer func() {
		if ferr := metadata.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("unable to write the metadata file: %w", ferr)
		}
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the metadata file: %w", cerr)
		}
	}()

	renderer := &Renderer{Rasterizer: p.Rasterizer}

	for i := 0; i < strokes.Len(); i++ {
		if p.Spinner != nil {
			p.Spinner.Update(i+1, strokes.Len())
		}
		stats.Entries++

		rec, err := strokes.Record(i)
		if err != nil {
			return stats, fmt.Errorf("stroke entry #%d: %w", i, err)
		}

		m, ok := meanings.Lookup(rec.Char)
		if !ok {
			stats.Skipped++
			continue
		}

		if err := p.generate(renderer, layout, rec); err != nil {
			return stats, err
		}
		if err := metadata.Write(NewDatasetRecord(rec.Char, m)); err != nil {
			return stats, err
		}
		stats.Rendered++
	}

	return stats, nil
}

// generate renders both image variants of a single character.
func (p *Processor) generate(r *Renderer, layout Layout, rec StrokeRecord) error {
	img, err := r.Render(rec)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, layout.Transparent(rec.Char)); err != nil {
		return fmt.Errorf("unable to save the transparent image of %q: %w", string(rec.Char), err)
	}

	wb := imop.WhiteBackground(img)
	if err := imaging.Save(wb, layout.WhiteBackground(rec.Char)); err != nil {
		return fmt.Errorf("unable to save the white background image of %q: %w", string(rec.Char), err)
	}
	return nil
}
