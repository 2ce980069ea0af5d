// Command pdfmaster is an interactive shell over the document session: the
// command-line stand-in for the desktop event loop. Every prompt command maps
// onto one session operation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	pdfmaster "github.com/AntWinner-y-y/PDF-Master"
	"github.com/AntWinner-y-y/PDF-Master/pkg/logger"
	"github.com/AntWinner-y-y/PDF-Master/pkg/render"
)

const usage = `Commands:
  open <file.pdf>          open a document
  close                    close the document
  info                     show document status
  goto <n>                 jump to 1-based page n
  next | prev              page navigation
  zoom in | out | <pct>%   adjust zoom
  move <src>,<dst>         move page src to dst (1-based)
  undo | redo              undo/redo page moves
  split <spec> <dir>       e.g. split 1,4;2-3 ./out
  merge-add <files...>     queue files for merging
  merge-rm <i>             drop queue entry i (1-based)
  merge-list               show the merge queue
  merge <out.pdf>          merge the queue
  render <out.png>         rasterize the current page
  thumbs <dir>             write thumbnails for all pages
  help                     this text
  quit                     exit`

func main() {
	verbose := flag.Bool("v", false, "log session operations to stderr")
	flag.Parse()

	cfg := pdfmaster.NewDefaultConfig()
	if *verbose {
		cfg.Logger = func(level logger.Level, msg string, keyvals ...interface{}) {
			fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, keyvals)
		}
	}

	sess, err := pdfmaster.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	if flag.NArg() > 0 {
		if err := sess.Open(flag.Arg(0)); err != nil {
			log.Fatalf("Failed to open PDF: %v", err)
		}
	}

	fmt.Println("PDF Master. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := dispatch(sess, cmd, rest); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func dispatch(sess *pdfmaster.Session, cmd, rest string) error {
	switch cmd {
	case "help":
		fmt.Println(usage)

	case "open":
		if err := sess.Open(rest); err != nil {
			return err
		}
		fmt.Printf("Opened %s (%d pages)\n", rest, sess.Document().PageCount())

	case "close":
		sess.Close()

	case "info":
		if !sess.HasDocument() {
			fmt.Println("No document open")
			return nil
		}
		doc := sess.Document()
		fmt.Printf("%s: %d pages, page %d, zoom %s\n",
			doc.Path(), doc.PageCount(), sess.CurrentPage()+1, sess.ZoomPercent())

	case "goto":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("invalid page number %q", rest)
		}
		return sess.GoToPage(n)

	case "next":
		sess.NextPage()

	case "prev":
		sess.PrevPage()

	case "zoom":
		switch rest {
		case "in":
			sess.ZoomIn()
		case "out":
			sess.ZoomOut()
		default:
			if err := sess.SetZoomPercent(rest); err != nil {
				return err
			}
		}
		fmt.Println(sess.ZoomPercent())

	case "move":
		return sess.MovePageSpec(rest)

	case "undo":
		done, err := sess.Undo()
		if err != nil {
			return err
		}
		if !done {
			fmt.Println("Nothing to undo")
		}

	case "redo":
		done, err := sess.Redo()
		if err != nil {
			return err
		}
		if !done {
			fmt.Println("Nothing to redo")
		}

	case "split":
		spec, dir, ok := strings.Cut(rest, " ")
		if !ok {
			return fmt.Errorf("usage: split <spec> <dir>")
		}
		paths, err := sess.Split(spec, strings.TrimSpace(dir))
		if err != nil {
			return err
		}
		fmt.Printf("Split into %d parts\n", len(paths))

	case "merge-add":
		return sess.AddToMergeList(strings.Fields(rest)...)

	case "merge-rm":
		i, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("invalid index %q", rest)
		}
		return sess.RemoveFromMergeList(i - 1)

	case "merge-list":
		for i, p := range sess.MergeList() {
			fmt.Printf("%d. %s\n", i+1, p)
		}

	case "merge":
		return sess.Merge(rest)

	case "render":
		img, err := sess.RenderCurrentPage()
		if err != nil {
			return err
		}
		return render.SavePNG(img, rest)

	case "thumbs":
		images, err := sess.RenderThumbnails()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(rest, 0o755); err != nil {
			return err
		}
		for i, img := range images {
			path := fmt.Sprintf("%s/thumb%d.png", rest, i+1)
			if err := render.SavePNG(img, path); err != nil {
				return err
			}
		}
		fmt.Printf("Wrote %d thumbnails\n", len(images))

	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return nil
}
