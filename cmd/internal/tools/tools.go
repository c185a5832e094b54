package tools

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nathanhack/matgen/dataset"
	"github.com/nathanhack/matgen/entry"
)

//Dataset is the content of one dataset CSV.
type Dataset struct {
	Name    string
	Records []entry.Record
	Summary dataset.Summary
}

//Name is the file name without directory or extension.
func Name(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

//LoadDatasets reads each CSV and summarizes it.
func LoadDatasets(paths []string) ([]Dataset, error) {
	result := make([]Dataset, len(paths))
	for i, path := range paths {
		records, err := dataset.LoadCSV(path)
		if err != nil {
			return nil, fmt.Errorf("error while loading dataset %v: %w", path, err)
		}
		summary := dataset.Summarize(records)
		summary.Name = Name(path)
		result[i] = Dataset{
			Name:    summary.Name,
			Records: records,
			Summary: summary,
		}
	}
	return result, nil
}

//Combine summarizes the records of all datasets together.
func Combine(datasets []Dataset) dataset.Summary {
	records := make([]entry.Record, 0)
	names := make([]string, len(datasets))
	for i, d := range datasets {
		records = append(records, d.Records...)
		names[i] = d.Name
	}
	summary := dataset.Summarize(records)
	summary.Name = strings.Join(names, "+")
	return summary
}
