package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-beaddeck"
)

// deckConverter renders a block sequence. Satisfied by *beaddeck.Converter.
type deckConverter interface {
	Convert(ctx context.Context, input beaddeck.Input) (*beaddeck.ConvertResult, error)
	Close() error
}

var _ deckConverter = (*beaddeck.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(opts ...beaddeck.Option) (deckConverter, error)
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		NewConverter: newChromeConverter,
	}
}

func newChromeConverter(opts ...beaddeck.Option) (deckConverter, error) {
	c, err := beaddeck.NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}
