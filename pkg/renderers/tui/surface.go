package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formflow/pkg/model"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/validation"
	"github.com/goliatone/go-formflow/pkg/workflow"
)

var _ workflow.Surface = (*Surface)(nil)

// Surface captures form input in the terminal and prints field errors below
// the prompts that produced them.
type Surface struct {
	driver PromptDriver
	theme  Theme

	mu     sync.Mutex
	form   model.FormModel
	errors render.ErrorMapping
}

// New constructs a surface with the survey driver unless overridden.
func New(options ...Option) *Surface {
	s := &Surface{theme: DefaultTheme}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Collect prompts every visible field of form in order. Text fields start
// from defaults; secret fields always start empty. Fields that failed the
// previous attempt show their message as prompt help.
func (s *Surface) Collect(ctx context.Context, form model.FormModel, defaults validation.Input) (validation.Input, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	previous := s.errors.Fields
	s.form = form
	s.mu.Unlock()

	if form.Title != "" {
		if err := s.driver.Info(ctx, strings.TrimSpace(s.theme.TitlePrefix+" "+form.Title)); err != nil {
			return nil, err
		}
	}

	input := make(validation.Input, len(form.Fields))
	for _, field := range form.Fields {
		if field.Hidden {
			if v := defaults.Get(field.Name); v != "" {
				input[field.Name] = v
			}
			continue
		}
		value, err := s.promptField(ctx, field, defaults.Get(field.Name), previous[field.Name])
		if err != nil {
			return nil, fmt.Errorf("tui: field %s: %w", field.Name, err)
		}
		input[field.Name] = value
	}
	return input, nil
}

func (s *Surface) promptField(ctx context.Context, field model.Field, def, failure string) (string, error) {
	cfg := InputConfig{
		Message: field.DisplayLabel(),
		Help:    promptHelp(field, failure),
	}
	switch field.Input {
	case model.InputPassword:
		return s.driver.Password(ctx, cfg)
	case model.InputFile:
		if cfg.Help == "" {
			cfg.Help = "Path to the file to upload"
		}
		value, err := s.driver.Input(ctx, cfg)
		return strings.TrimSpace(value), err
	default:
		cfg.Default = def
		return s.driver.Input(ctx, cfg)
	}
}

func promptHelp(field model.Field, failure string) string {
	switch {
	case failure != "":
		return failure
	case field.Description != "":
		return field.Description
	default:
		return field.Placeholder
	}
}

// Confirm asks a yes/no question.
func (s *Surface) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	return s.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: def})
}

// ClearErrors drops the errors of the previous attempt.
func (s *Surface) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = render.ErrorMapping{}
}

// SetErrors records errs against the last collected form and prints them in
// field order. Messages for unknown fields are printed last.
func (s *Surface) SetErrors(errs validation.FieldErrors) {
	s.mu.Lock()
	mapping := render.MapFieldErrors(s.form, errs)
	s.errors = mapping
	form := s.form
	s.mu.Unlock()

	ctx := context.Background()
	for _, field := range form.Fields {
		if msg, ok := mapping.Fields[field.Name]; ok {
			_ = s.driver.Info(ctx, fmt.Sprintf("%s %s: %s", s.theme.ErrorPrefix, field.DisplayLabel(), msg))
		}
	}
	for _, msg := range mapping.Form {
		_ = s.driver.Info(ctx, fmt.Sprintf("%s %s", s.theme.ErrorPrefix, msg))
	}
}

// Errors returns the field errors currently shown.
func (s *Surface) Errors() validation.FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errors.Fields) == 0 {
		return nil
	}
	out := make(validation.FieldErrors, len(s.errors.Fields))
	for k, v := range s.errors.Fields {
		out[k] = v
	}
	return out
}
