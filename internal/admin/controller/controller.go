// Package controller binds form state to validated fields and coordinates
// submission through the Buildora SDK.
//
// Every controller follows the same machine: Editing until a valid submit,
// Submitting while the single in-flight request runs, then either success
// (form cleared, notification, follow-up hook) or failure (notification,
// entered values kept, back to Editing). A second submit while one is in
// flight is rejected rather than deduplicated.
package controller

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/buildora/buildora/pkg/adminsdk"
)

// State is the controller's position in the submission lifecycle.
type State int

const (
	// StateEditing accepts field input. Failed submissions return here
	// with the entered values intact.
	StateEditing State = iota

	// StateSubmitting has one request in flight and rejects further
	// submits.
	StateSubmitting

	// StateSucceeded marks a completed submission; the form is cleared.
	StateSucceeded
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	default:
		return "editing"
	}
}

// ErrSubmitInFlight rejects a submit while a previous one is pending.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Notifier receives the user-facing outcome of a submission, the CLI
// analog of the web front end's toast notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// FieldErrors maps field names to validation messages. Validation failures
// never reach the network.
type FieldErrors map[string]string

// Error implements the error interface, listing fields alphabetically.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+fe[field])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateForm checks a form struct's validate tags and converts any
// violations into FieldErrors. Returns nil when the form is valid.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	fe := make(FieldErrors, len(violations))
	for _, v := range violations {
		fe[v.Field()] = fieldMessage(v)
	}
	return fe
}

func fieldMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required", "required_if":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", v.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", v.Param())
	default:
		return "is invalid"
	}
}

// base carries the state machine shared by every controller.
type base struct {
	mu       sync.Mutex
	state    State
	lastErr  error
	notifier Notifier
}

// begin transitions into Submitting, enforcing the single in-flight rule.
func (b *base) begin() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	b.state = StateSubmitting
	b.lastErr = nil
	return nil
}

// reject returns to Editing without notifying; used for local validation
// failures, which surface inline rather than as notifications.
func (b *base) reject(err error) error {
	b.mu.Lock()
	b.state = StateEditing
	b.lastErr = err
	b.mu.Unlock()
	return err
}

// fail surfaces a remote rejection and returns to Editing. Entered values
// are never touched, so nothing is lost on failure.
func (b *base) fail(err error) error {
	b.mu.Lock()
	b.state = StateEditing
	b.lastErr = err
	b.mu.Unlock()

	b.notifier.Error(adminsdk.ErrorMessage(err))
	return err
}

// succeed records completion and notifies.
func (b *base) succeed(msg string) {
	b.mu.Lock()
	b.state = StateSucceeded
	b.mu.Unlock()

	b.notifier.Success(msg)
}

// State reports the controller's current lifecycle position.
func (b *base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// LastError returns the most recent validation or submission error.
func (b *base) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
