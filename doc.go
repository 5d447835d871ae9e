/*
Package kanjiset builds a labeled image dataset of kanji characters. It combines the
KanjiVG stroke database, which holds the vector strokes of every character, with the
KANJIDIC2 dictionary, which holds the character meanings, and produces two PNG images
per character (one with a transparent and one with a white background) together with
a metadata.jsonl file pairing every image with its English meanings.

The package provides a command line interface. To check the supported flags type:

	$ kanjiset --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/kanjiset"
	)

	func main() {
		meanings, err := kanjiset.LoadMeanings("kanjidic2.xml")
		if err != nil {
			log.Fatal(err)
		}
		strokes, err := kanjiset.LoadStrokes("kanjivg.xml")
		if err != nil {
			log.Fatal(err)
		}

		p := &kanjiset.Processor{OutputDir: "dataset"}
		if _, err := p.Process(strokes, meanings); err != nil {
			log.Fatalf("Error generating the dataset: %s", err.Error())
		}
	}
*/
package kanjiset
