package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esimov/kanjiset"
	"github.com/esimov/kanjiset/utils"
)

const HelpBanner = `
┬┌─┌─┐┌┐┌ ┬┬┌─┐┌─┐┌┬┐
├┴┐├─┤│││ │││└─┐├┤  │
┴ ┴┴ ┴┘└┘└┘┴└─┘└─┘ ┴

Kanji image dataset generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	outputDir   = flag.String("out", "", "Path to the output folder")
	dictPath    = flag.String("kanjidic2", "../kanjidic2.xml", "Path to the kanjidic2.xml file holding the meanings of the kanji characters")
	strokesPath = flag.String("kanjivg", "../kanjivg-20220427.xml", "Path to the kanjivg.xml file holding the strokes of the kanji characters in vector format")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*outputDir) == 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide an output directory with the -out flag!", utils.ErrorMessage))
	}

	op := &kanjiset.Ops{
		OutputDir:   *outputDir,
		DictPath:    *dictPath,
		StrokesPath: *strokesPath,
	}

	proc := &kanjiset.Processor{}
	if _, err := proc.Execute(op, os.Stderr); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the dataset: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
}
