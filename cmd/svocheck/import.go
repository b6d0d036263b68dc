package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/svocheck/storage/filesystem"
	"github.com/revelaction/svocheck/storage/sqlite/zombiezen"
)

func importCommand(opts ImportOptions, ui UI) error {
	src, err := filesystem.NewParseStore(opts.From)
	if err != nil {
		return err
	}

	dst, err := zombiezen.Open(opts.To)
	if err != nil {
		return fmt.Errorf("failed to open parse database: %w", err)
	}
	defer dst.Close()

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	names := src.Names()

	uiprogress.Start()
	bar := uiprogress.AddBar(max(len(names), 1))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, name := range names {
		doc, err := src.Doc(name)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read doc %s: %w", name, err)
		}

		n, err := dst.Import(doc)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", name, err)
		}
		count += n
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d sentences from %d docs in %s to %s\n", count, len(names), opts.From, opts.To)
	return nil
}
