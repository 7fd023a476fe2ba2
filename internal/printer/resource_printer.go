// Package printer renders decoded resource graphs for CLI output.
package printer

import (
	"fmt"
	"io"

	"github.com/jsonapi-tools/wiremap/internal/resource"
)

// Printer outputs resource instances.
type Printer interface {
	PrintResource(r *resource.Resource) error
}

// ResourcePrinter renders a resource with its attributes and relationship
// linkage to a writer.
type ResourcePrinter struct {
	out  io.Writer
	opts ResourcePrinterOptions
}

// NewPrinter creates a Printer with the provided output options.
func NewPrinter(out io.Writer, opt ...ResourcePrinterOption) (Printer, error) {
	opts, err := NewResourcePrinterOptions(opt...)
	if err != nil {
		return nil, err
	}

	return &ResourcePrinter{
		out:  out,
		opts: opts,
	}, nil
}

// PrintResource outputs a single resource entry with options.
func (p *ResourcePrinter) PrintResource(r *resource.Resource) error {
	if err := p.printDetails(r); err != nil {
		return err
	}

	if p.opts.showSeparator {
		if _, err := fmt.Fprintln(p.out, "────────────────────────────────────────────"); err != nil {
			return err
		}
	}

	return nil
}

func (p *ResourcePrinter) printDetails(r *resource.Resource) error {
	id := r.ID()
	if id == "" {
		id = "(unsaved)"
	}

	header := fmt.Sprintf("%s/%s", r.Type(), id)
	if r.Placeholder() {
		header += "  [placeholder]"
	}
	if _, err := fmt.Fprintln(p.out, header); err != nil {
		return err
	}

	for _, name := range r.AttributeNames() {
		value, _ := r.Get(name)
		marker := ""
		if p.opts.showDirty && r.IsDirty(name) {
			marker = " *"
		}
		if _, err := fmt.Fprintf(p.out, "  %s = %v%s\n", name, value, marker); err != nil {
			return err
		}
	}

	if !p.opts.showLinkage {
		return nil
	}

	for _, name := range r.RelationshipNames() {
		if target, ok := r.ToOne(name); ok {
			if _, err := fmt.Fprintf(p.out, "  %s -> %s/%s\n", name, target.Type(), target.ID()); err != nil {
				return err
			}
			continue
		}

		targets, _ := r.ToMany(name)
		for _, target := range targets {
			if _, err := fmt.Fprintf(p.out, "  %s -> %s/%s\n", name, target.Type(), target.ID()); err != nil {
				return err
			}
		}
	}

	return nil
}
