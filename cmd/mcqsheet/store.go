package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tsawler/mcqsheet/project"
	"github.com/tsawler/mcqsheet/store"
)

func openStore(a *app) (*store.Store, error) {
	return store.Open(a.cfg.DatabasePath, a.log)
}

func runSave(a *app, args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	key := fs.String("key", project.StorageKey, "database key")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected exactly one project file")
	}

	doc, err := project.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	st, err := openStore(a)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(context.Background(), *key, doc); err != nil {
		return err
	}
	fmt.Printf("saved %q as %s\n", doc.ProjectName, *key)
	return nil
}

func runLoad(a *app, args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	key := fs.String("key", project.StorageKey, "database key")
	out := fs.String("o", "", "output project file (default <name>.json)")
	fs.Parse(args)

	st, err := openStore(a)
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := st.Load(context.Background(), *key)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = project.FileName(doc.ProjectName)
	}
	if err := project.Save(path, doc); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runList(a *app, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Parse(args)

	st, err := openStore(a)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.List(context.Background())
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tPROJECT\tLESSONS\tQUESTIONS\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", e.Key, e.ProjectName, e.Lessons, e.Questions, e.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func runDelete(a *app, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	key := fs.String("key", "", "database key")
	fs.Parse(args)
	if *key == "" {
		return errors.New("-key is required")
	}

	st, err := openStore(a)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(context.Background(), *key); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", *key)
	return nil
}
