package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	pdfmaster "github.com/AntWinner-y-y/PDF-Master"
)

func main() {
	spec := flag.String("spec", "", "page groups, e.g. \"1,4;2-3;5-6\" (1-based)")
	outDir := flag.String("out", ".", "directory to create the _split folder in")
	flag.Parse()

	if flag.NArg() != 1 || *spec == "" {
		fmt.Println("Usage: split_pdf -spec \"1,4;2-3\" [-out dir] <input.pdf>")
		os.Exit(1)
	}

	sess, err := pdfmaster.NewSession(nil)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	if err := sess.Open(flag.Arg(0)); err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer sess.Close()

	paths, err := sess.Split(*spec, *outDir)
	if err != nil {
		log.Fatalf("Failed to split: %v", err)
	}

	for _, p := range paths {
		fmt.Println(p)
	}
}
