package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leafo/abctool"
)

func main() {
	jsonOutput := flag.Bool("json", false, "Output parsed tunes as JSON")
	exportMidiDir := flag.String("export-midi", "", "Directory to write one .mid file per tune into")
	keyDesignator := flag.String("key", "", "Parse a single key designator (e.g. \"F# mixolydian\") and print its accidentals")
	flag.Parse()

	if *keyDesignator != "" {
		printKey(*keyDesignator)
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <tunebook.abc>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	tunes, errs := abc.ParseTunebookFile(filename)
	abc.LogParseSummary(filename, tunes, errs)

	if *jsonOutput {
		if err := json.NewEncoder(os.Stdout).Encode(tunes); err != nil {
			log.Printf("Error encoding tunes as JSON: %v\n", err)
			os.Exit(1)
		}
	}

	if *exportMidiDir != "" {
		if err := exportTunes(tunes, *exportMidiDir); err != nil {
			log.Printf("Error exporting MIDI: %v\n", err)
			os.Exit(1)
		}
	}
}

func exportTunes(tunes map[int]*abc.Tune, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for ref, tune := range tunes {
		exporter := abc.NewMidiExporter()
		if err := exporter.AddTune(tune); err != nil {
			return fmt.Errorf("tune %d: %w", ref, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("tune-%d.mid", ref))
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		err = exporter.WriteTo(file)
		file.Close()
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Printf("wrote %s\n", path)
	}
	return nil
}

func printKey(designator string) {
	acc, key, mode, err := abc.ParseKey(designator)
	if err != nil {
		log.Printf("Error parsing key %q: %v\n", designator, err)
		os.Exit(1)
	}
	fmt.Printf("key=%s mode=%s accidentals(A..G)=%v\n", key, mode, acc)
}
