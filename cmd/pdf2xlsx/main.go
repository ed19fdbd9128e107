package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pyhub-apps/pdf2xlsx"
	"github.com/pyhub-apps/pdf2xlsx/pkg/batch"
)

func main() {
	out := flag.String("o", "", "output path (xlsx for a single input, zip archive for several)")
	parallel := flag.Int("j", 1, "number of documents converted concurrently")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: pdf2xlsx [-o output] [-j n] file.pdf [file2.pdf ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if len(paths) == 1 {
		convertOne(paths[0], *out)
		return
	}
	convertBatch(paths, *out, *parallel)
}

func convertOne(path, out string) {
	data, err := pdf2xlsx.ConvertFile(path)
	if err != nil {
		log.Fatalf("Conversion failed for %s: %v", path, err)
	}
	if out == "" {
		out = batch.OutputName(path)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
}

func convertBatch(paths []string, out string, parallel int) {
	driver := batch.New(batch.WithParallelism(parallel))

	result, err := driver.Run(paths)
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}
	for _, failure := range result.Failures {
		log.Printf("Conversion failed for %s: %v", failure.Name, failure.Err)
	}

	if out == "" {
		out = driver.ArchiveName()
	}
	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", out, err)
	}
	defer f.Close()
	if err := result.WriteArchive(f); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}

	fmt.Printf("Wrote %s (%d of %d documents converted)\n", out, len(result.Outputs), len(paths))
}
