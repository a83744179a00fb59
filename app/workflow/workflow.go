// Package workflow implements the multi-step form wizard driving the
// project create, update and quota pages. A workflow is an ordered list of
// steps, each backed by an action that validates its slice of the submitted
// form and commits it against the backends.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
)

// FieldError is a per-field validation failure, rendered inline on the form.
type FieldError struct {
	Step    string
	Field   string
	Message string
}

// Action is one step's form logic. Validate inspects the bound form data and
// returns field errors; Handle commits the step against the backends.
type Action interface {
	// Name identifies the action in logs and error messages.
	Name() string
	// Validate returns the field errors for the bound form data.
	Validate() []FieldError
	// Handle commits the step. It is only called after every step in the
	// workflow validated cleanly.
	Handle(ctx context.Context) error
}

// Step is one pane of the wizard.
type Step struct {
	// Slug keys the step's form fields and template pane.
	Slug string
	// Title is the tab caption.
	Title string
	// Action carries the step's validation and commit logic.
	Action Action
}

// Workflow is an ordered set of steps submitted as a single form.
type Workflow struct {
	// Slug names the workflow in templates and logs.
	Slug string
	// Title is the page heading and submit button label.
	Title string
	// SuccessURL is where a completed submission redirects.
	SuccessURL string
	// SuccessMessage flashes after a fully clean run.
	SuccessMessage string

	Steps []Step

	logger *slog.Logger
}

// New assembles a workflow from its steps.
func New(slug, title, successURL, successMessage string, steps []Step, logger *slog.Logger) *Workflow {
	return &Workflow{
		Slug:           slug,
		Title:          title,
		SuccessURL:     successURL,
		SuccessMessage: successMessage,
		Steps:          steps,
		logger:         logger.With("workflow", slug),
	}
}

// Validate runs every step's validation and collects all field errors, so
// the re-rendered form can show every problem at once.
func (w *Workflow) Validate() []FieldError {
	var fieldErrs []FieldError
	for _, step := range w.Steps {
		for _, fe := range step.Action.Validate() {
			fe.Step = step.Slug
			fieldErrs = append(fieldErrs, fe)
		}
	}
	return fieldErrs
}

// Handle commits every step in order. A failing step does not stop the ones
// after it; each failure comes back as its own error so the view can flash
// them individually. Callers must run Validate first.
func (w *Workflow) Handle(ctx context.Context) []error {
	var errs []error
	for _, step := range w.Steps {
		if err := step.Action.Handle(ctx); err != nil {
			w.logger.Error("workflow step failed", "step", step.Slug, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", step.Action.Name(), err))
			continue
		}
		w.logger.Debug("workflow step handled", "step", step.Slug)
	}
	return errs
}

// Run is the POST path: validate everything, and only when the whole form is
// clean, commit step by step.
func (w *Workflow) Run(ctx context.Context) ([]FieldError, []error) {
	if fieldErrs := w.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}
	return nil, w.Handle(ctx)
}
