package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is the Gang-of-Four family a pattern belongs to.
type Category string

const (
	// CategoryCreational groups patterns that deal with object creation
	// (Abstract Factory, Builder, Factory, Prototype, Singleton).
	CategoryCreational Category = "creational"

	// CategoryStructural groups patterns that compose objects into larger
	// structures (Adapter, Bridge, Composite, Decorator, Facade, Flyweight, Proxy).
	CategoryStructural Category = "structural"

	// CategoryBehavioral groups patterns that distribute responsibility
	// between objects (Chain of Responsibility, Command, Observer, ...).
	CategoryBehavioral Category = "behavioral"
)

// String returns the string representation of Category.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (c Category) String() string {
	return string(c)
}

// IsValid checks whether the Category value is one of the
// predefined valid categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCreational, CategoryStructural, CategoryBehavioral:
		return true
	default:
		return false
	}
}

// ParseCategory converts a string to a Category.
// Returns an error if the string does not match any valid category.
func ParseCategory(s string) (Category, error) {
	category := Category(strings.ToLower(s))
	if !category.IsValid() {
		return "", fmt.Errorf("invalid category: %q (valid: creational, structural, behavioral)", s)
	}
	return category, nil
}

// PatternInfo describes a single demonstration registered in the catalog.
type PatternInfo struct {
	// Name is the unique slug used on the command line (e.g., "abstract-factory").
	Name string `json:"name"`

	// Title is the display name of the pattern (e.g., "Abstract Factory").
	Title string `json:"title"`

	// Category is the Gang-of-Four family of the pattern.
	Category Category `json:"category"`

	// Summary is a one-line description of what the demonstration shows.
	Summary string `json:"summary"`
}

// nameRegex validates pattern slugs: lowercase alphanumeric words
// separated by single hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateName checks if the given name is a valid pattern slug.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("pattern name must not be empty")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid pattern name %q: must be lowercase alphanumeric words separated by hyphens", name)
	}
	return nil
}

// Validate checks that every field of the PatternInfo is populated
// and well-formed.
func (p PatternInfo) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if p.Title == "" {
		return fmt.Errorf("pattern %q: title must not be empty", p.Name)
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("pattern %q: invalid category %q", p.Name, p.Category)
	}
	return nil
}

// ExitCode defines standard CLI exit codes.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitPatternNotFound indicates a requested pattern is not in the catalog.
	ExitPatternNotFound ExitCode = 2

	// ExitConfigError indicates the settings file could not be read,
	// parsed, or validated.
	ExitConfigError ExitCode = 3

	// ExitDemoFailed indicates a demonstration returned an error while running.
	ExitDemoFailed ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
