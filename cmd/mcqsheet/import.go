package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/tsawler/mcqsheet/aiimport"
	"github.com/tsawler/mcqsheet/format"
	"github.com/tsawler/mcqsheet/internal/config"
	"github.com/tsawler/mcqsheet/internal/logger"
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/ocr"
	"github.com/tsawler/mcqsheet/project"
	"github.com/tsawler/mcqsheet/render/htmlview"
	"github.com/tsawler/mcqsheet/store"
	"github.com/tsawler/mcqsheet/workspace"
)

func runImport(a *app, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	out := fs.String("o", "", "output project file (default <name>.json)")
	into := fs.String("into", "", "append to this existing project file instead of starting a new one")
	name := fs.String("name", "Imported Project", "project name for a new project")
	lang := fs.String("lang", a.cfg.OCRLanguage, "tesseract language(s) for image input, e.g. eng+fra")
	clean := fs.Bool("clean", false, "ask the model to tidy the text before extraction")
	dryRun := fs.Bool("dry-run", false, "print the extracted text and exit without calling the model")
	save := fs.Bool("save", false, "also store the result in the local database")
	key := fs.String("key", project.StorageKey, "database key used with -save")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return errors.New("expected exactly one input file")
	}
	text, err := readSource(fs.Arg(0), *lang, a.log)
	if err != nil {
		return err
	}
	if *dryRun {
		fmt.Println(text)
		return nil
	}

	client, err := aiimport.NewClient(aiConfig(a.cfg), a.log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *clean {
		if text, err = client.CleanFormatting(ctx, text); err != nil {
			return fmt.Errorf("cleaning text: %w", err)
		}
	}
	lessons, err := client.Extract(ctx, text)
	if err != nil {
		return err
	}
	a.log.Info("questions extracted", "lessons", len(lessons), "questions", model.QuestionCount(lessons))

	var opts []workspace.Option
	opts = append(opts, workspace.WithLogger(a.log))
	if *save {
		st, err := store.Open(a.cfg.DatabasePath, a.log)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, workspace.WithSaver(st.Saver(*key)))
	}

	ws, err := openTarget(*into, *name, opts)
	if err != nil {
		return err
	}
	if err := ws.ApplyImport(lessons); err != nil {
		return err
	}

	doc := ws.Export()
	path := *out
	switch {
	case path != "":
	case *into != "":
		path = *into
	default:
		path = project.FileName(doc.ProjectName)
	}
	if err := project.Save(path, doc); err != nil {
		return err
	}
	fmt.Printf("imported %d lesson(s) into %s\n", len(lessons), path)
	return nil
}

// openTarget returns a workspace on an existing project file, or on an
// empty project called name.
func openTarget(path, name string, opts []workspace.Option) (*workspace.Workspace, error) {
	if path != "" {
		doc, err := project.Load(path)
		if err != nil {
			return nil, err
		}
		return workspace.FromDocument(doc, opts...)
	}
	settings := model.DefaultSettings()
	settings.ProjectName = name
	return workspace.FromDocument(project.New(settings, nil), opts...)
}

// readSource turns an input file into plain text: text files are read as
// is, HTML is flattened and images go through OCR.
func readSource(path, lang string, log *logger.Logger) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	kind, err := format.DetectFile(path, f)
	if err != nil {
		return "", fmt.Errorf("failed to detect input format: %w", err)
	}
	log.Debug("reading import source", "path", path, "format", kind.String())

	switch {
	case kind == format.Text:
		data, err := os.ReadFile(path)
		return string(data), err
	case kind == format.HTML:
		return htmlview.PlainText(f)
	case kind.IsImage():
		cfg := ocr.DefaultConfig()
		cfg.Language = lang
		client, err := ocr.NewWithConfig(cfg)
		if err != nil {
			if errors.Is(err, ocr.ErrOCRNotEnabled) {
				return "", fmt.Errorf("%w: rebuild with -tags ocr to import images", err)
			}
			return "", err
		}
		defer client.Close()
		return ocr.RecognizeFile(client, path)
	case kind.IsProject():
		return "", fmt.Errorf("%s is already a project; use -into to append imports to it", path)
	default:
		return "", fmt.Errorf("unsupported input format: %s", kind)
	}
}

func aiConfig(c *config.Config) aiimport.Config {
	cfg := aiimport.DefaultConfig()
	cfg.APIKey = c.OpenAIAPIKey
	cfg.BaseURL = c.OpenAIBaseURL
	cfg.Model = c.OpenAIModel
	cfg.Timeout = c.OpenAITimeout
	cfg.MaxRetries = c.OpenAIMaxRetries
	return cfg
}
