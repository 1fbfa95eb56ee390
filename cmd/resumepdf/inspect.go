package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/jrc1883/resumepdf/internal/pdfcheck"
)

// inspectReport is the JSON shape printed by inspect --json.
type inspectReport struct {
	Path   string `json:"path"`
	Pages  int    `json:"pages"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
	Size   int64  `json:"size"`
	Text   string `json:"text,omitempty"`
}

// runInspect opens a PDF and prints its page count and metadata.
func runInspect(args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: inspect expects exactly one PDF path", ErrMissingArgument)
	}
	path := positional[0]

	report, err := pdfcheck.InspectFile(path)
	if err != nil {
		return err
	}

	if flags.json {
		out := inspectReport{
			Path:   path,
			Pages:  report.Pages,
			Title:  report.Title,
			Author: report.Author,
			Size:   report.Size,
		}
		if flags.text {
			out.Text = report.Text
		}
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(env.Stdout, "File:   %s\n", path)
	fmt.Fprintf(env.Stdout, "Pages:  %d\n", report.Pages)
	if report.Title != "" {
		fmt.Fprintf(env.Stdout, "Title:  %s\n", report.Title)
	}
	if report.Author != "" {
		fmt.Fprintf(env.Stdout, "Author: %s\n", report.Author)
	}
	fmt.Fprintf(env.Stdout, "Size:   %d bytes\n", report.Size)
	if flags.text {
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, strings.TrimSpace(report.Text))
	}
	return nil
}
