package main

import (
	"fmt"
	"log"
	"os"

	pdfmaster "github.com/AntWinner-y-y/PDF-Master"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: merge_pdfs <output.pdf> <input1.pdf> <input2.pdf> ...")
		os.Exit(1)
	}

	outPath := os.Args[1]
	sources := os.Args[2:]

	if err := pdfmaster.Merge(sources, outPath); err != nil {
		log.Fatalf("Failed to merge: %v", err)
	}

	fmt.Printf("Merged %d files into %s\n", len(sources), outPath)
}
