package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AntWinner-y-y/PDF-Master/pkg/render"
)

func main() {
	page := flag.Int("page", 1, "1-based page number")
	zoom := flag.Float64("zoom", 1.0, "zoom factor (1.0 = 72 dpi)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Println("Usage: render_page [-page N] [-zoom F] <input.pdf> <output.png>")
		os.Exit(1)
	}

	r := render.NewFitzRenderer()
	img, err := r.RenderPage(flag.Arg(0), *page-1, *zoom)
	if err != nil {
		log.Fatalf("Failed to render page %d: %v", *page, err)
	}

	if err := render.SavePNG(img, flag.Arg(1)); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}
}
