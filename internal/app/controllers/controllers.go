package controllers

import (
	"context"
	"fmt"
	"io"
)

// Exercise is a classwork that can be run from the command line
type Exercise interface {
	// Run computes the exercise reports, prints them to out and saves any exports
	Run(ctx context.Context, out io.Writer) error
}

// DataLoader fills a repository from a directory of input files
type DataLoader interface {
	LoadFromDir(dir string) error
}

// console remembers the first write error so report code can print without checking every call
type console struct {
	w   io.Writer
	err error
}

func newConsole(w io.Writer) *console {
	return &console{w: w}
}

func (c *console) printf(format string, args ...interface{}) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}

func (c *console) println(args ...interface{}) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintln(c.w, args...)
}

func (c *console) Err() error {
	if c.err != nil {
		return fmt.Errorf("failed to write report: %w", c.err)
	}
	return nil
}
