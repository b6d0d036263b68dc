package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/svocheck/feedback"
	"github.com/revelaction/svocheck/stat"
	"github.com/revelaction/svocheck/storage/filesystem"
)

func statCommand(opts StatOptions, ui UI) error {

	s, err := filesystem.NewParseStore(opts.Corpus)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, name := range s.Names() {
		doc, err := s.Doc(name)
		if err != nil {
			return err
		}

		hdl.Aggregate(doc)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d\n", stats.NumSentences, stats.TokensPerSentenceMean)

	categories := make([]feedback.Category, 0, len(stats.Categories))
	for c := range stats.Categories {
		categories = append(categories, c)
	}

	sort.Slice(categories, func(i, j int) bool {
		ci, cj := stats.Categories[categories[i]], stats.Categories[categories[j]]
		if ci != cj {
			return ci > cj
		}
		return categories[i] < categories[j]
	})

	for _, c := range categories {
		fmt.Fprintf(ui.Out, "%5d %s\n", stats.Categories[c], c)
	}

	return nil
}
