package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/tsawler/mcqsheet"
	"github.com/tsawler/mcqsheet/duplicates"
	"github.com/tsawler/mcqsheet/layout"
)

// sheetFlags are the settings overrides shared by the rendering commands.
type sheetFlags struct {
	threshold    float64
	density      float64
	explanations bool
	highlight    bool
	title        string
}

func (f *sheetFlags) register(fs *flag.FlagSet) {
	fs.Float64Var(&f.threshold, "threshold", 0.85, "fuzzy duplicate threshold (0-1)")
	fs.Float64Var(&f.density, "density", 1, "vertical density multiplier")
	fs.BoolVar(&f.explanations, "explanations", false, "print explanations")
	fs.BoolVar(&f.highlight, "highlight", true, "underline duplicates")
	fs.StringVar(&f.title, "title", "", "override the project name")
}

// sheet opens the project named by the single positional argument and
// applies only the flags that were set explicitly, so the document's own
// settings win otherwise.
func (f *sheetFlags) sheet(fs *flag.FlagSet) (*mcqsheet.Sheet, error) {
	if fs.NArg() != 1 {
		return nil, errors.New("expected exactly one project file")
	}
	s := mcqsheet.Open(fs.Arg(0))
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "threshold":
			s = s.Threshold(f.threshold)
		case "density":
			s = s.Density(f.density)
		case "explanations":
			s = s.Explanations(f.explanations)
		case "highlight":
			s = s.Highlighting(f.highlight)
		case "title":
			s = s.Title(f.title)
		}
	})
	return s, nil
}

// output opens path for writing, or returns stdout for "" and "-".
func output(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeTo(path string, fn func(w io.Writer) error) error {
	w, err := output(path)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func runLayout(a *app, args []string) error {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	var sf sheetFlags
	sf.register(fs)
	fs.Parse(args)

	s, err := sf.sheet(fs)
	if err != nil {
		return err
	}
	plan, err := s.Layout()
	if err != nil {
		return err
	}
	a.log.Debug("layout computed", "pages", plan.PageCount())
	printPlan(os.Stdout, plan)
	return nil
}

func printPlan(w io.Writer, plan *layout.Plan) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAGE\tCOL\tKIND\tLESSON\tQUESTION\tY\tHEIGHT")
	for pi := range plan.Pages {
		for ci, col := range plan.Pages[pi].Columns {
			for _, b := range col.Blocks {
				q := "-"
				if b.Kind == layout.KindQuestion {
					q = fmt.Sprint(b.QuestionIndex)
				}
				fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\t%.1f\t%.1f\n",
					pi+1, ci+1, b.Kind, b.LessonIndex+1, q, b.Y, b.Height)
			}
		}
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d page(s)\n", plan.PageCount())
}

func runDups(a *app, args []string) error {
	fs := flag.NewFlagSet("dups", flag.ExitOnError)
	var sf sheetFlags
	sf.register(fs)
	fs.Parse(args)

	s, err := sf.sheet(fs)
	if err != nil {
		return err
	}
	pairs, err := s.Duplicates()
	if err != nil {
		return err
	}
	choices, err := s.ChoiceDuplicates()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSIMILARITY\tQUESTION A\tQUESTION B")
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\n", p.Kind, p.Similarity, p.QuestionIDA, p.QuestionIDB)
	}
	tw.Flush()

	for _, c := range choices {
		fmt.Printf("question %s: near-identical choices %v\n", c.QuestionID, c.Labels)
	}
	unresolved, _ := duplicates.Count(pairs)
	fmt.Printf("\n%d duplicate pair(s), %d question(s) with repeated choices\n", unresolved, len(choices))
	return nil
}

func runPDF(a *app, args []string) error {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	var sf sheetFlags
	sf.register(fs)
	out := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)

	s, err := sf.sheet(fs)
	if err != nil {
		return err
	}
	if err := writeTo(*out, s.PDF); err != nil {
		return err
	}
	a.log.Info("pdf written", "output", *out)
	return nil
}

func runHTML(a *app, args []string) error {
	fs := flag.NewFlagSet("html", flag.ExitOnError)
	var sf sheetFlags
	sf.register(fs)
	out := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)

	s, err := sf.sheet(fs)
	if err != nil {
		return err
	}
	if err := writeTo(*out, s.HTML); err != nil {
		return err
	}
	a.log.Info("html written", "output", *out)
	return nil
}

func runPNG(a *app, args []string) error {
	fs := flag.NewFlagSet("png", flag.ExitOnError)
	var sf sheetFlags
	sf.register(fs)
	out := fs.String("o", "", "output file (default stdout)")
	page := fs.Int("page", 1, "page to render (1-indexed)")
	scale := fs.Float64("scale", 1, "device pixels per layout pixel")
	fs.Parse(args)

	s, err := sf.sheet(fs)
	if err != nil {
		return err
	}
	err = writeTo(*out, func(w io.Writer) error {
		return s.PNG(w, *page, *scale)
	})
	if err != nil {
		return err
	}
	a.log.Info("png written", "output", *out, "page", *page, "scale", *scale)
	return nil
}
