// Package benchmarkerrors contains the errors returned while resolving a benchmark run configuration.
// Every failure is fatal to the resolution attempt; callers look for the error types defined in this
// file (using errors.As) to decide how to report the problem, or use KindFromError to classify it.
//
// Errors should be created with errors.WithStack so that the host process can log where validation failed.
package benchmarkerrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies an error into the configuration error taxonomy.
type Kind int

const (
	Unknown Kind = iota
	MissingRequiredField
	NotFound
	NotReadable
	UnsupportedBackend
	AmbiguousCacheSpec
	InconsistentClusteringFields
	ResultsDirectoryUnwritable
	ArithmeticOverflow
	InvalidValue
	DatasetUnloadable
)

var kindNames = map[Kind]string{
	Unknown:                      "Unknown",
	MissingRequiredField:         "MissingRequiredField",
	NotFound:                     "NotFound",
	NotReadable:                  "NotReadable",
	UnsupportedBackend:           "UnsupportedBackend",
	AmbiguousCacheSpec:           "AmbiguousCacheSpec",
	InconsistentClusteringFields: "InconsistentClusteringFields",
	ResultsDirectoryUnwritable:   "ResultsDirectoryUnwritable",
	ArithmeticOverflow:           "ArithmeticOverflow",
	InvalidValue:                 "InvalidValue",
	DatasetUnloadable:            "DatasetUnloadable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrMissingRequiredField is returned when a mandatory key is absent from the settings source.
// Message is optional and is omitted from the error message if not provided.
type ErrMissingRequiredField struct {
	Field   string // Settings key, e.g., "nodes-count"
	Message string // An optional message, e.g., explaining why the field is required
}

func (err *ErrMissingRequiredField) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("configuration must specify %q", err.Field)
	}
	return fmt.Sprintf("configuration must specify %q; %s", err.Field, err.Message)
}

// ErrInvalidValue is returned when a key is present but its value cannot be used,
// e.g., because it does not parse as the expected type or is out of range.
type ErrInvalidValue struct {
	Field   string      // Settings key the value was read from
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidValue) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %q is invalid for field %q", fmt.Sprint(err.Value), err.Field)
	}
	return fmt.Sprintf("value %q is invalid for field %q; %s", fmt.Sprint(err.Value), err.Field, err.Message)
}

// ErrNotFound is returned when a file referenced by the configuration does not exist.
// Role is the human-readable name of what the file is used for, e.g., "dataset".
type ErrNotFound struct {
	Role string
	Path string
}

func (err *ErrNotFound) Error() string {
	return fmt.Sprintf("the %s %q does not exist", err.Role, err.Path)
}

// ErrNotReadable is returned when a file referenced by the configuration exists
// but is not a regular file that the current user can read.
type ErrNotReadable struct {
	Role   string
	Path   string
	Reason string // Optional detail, e.g., "is a directory"
}

func (err *ErrNotReadable) Error() string {
	s := fmt.Sprintf("the %s %q must be a file that this user can read", err.Role, err.Path)
	if err.Reason != "" {
		s = s + fmt.Sprintf("; %s", err.Reason)
	}
	return s
}

// ErrUnsupportedBackend is returned when a requested database backend is not in the registry.
type ErrUnsupportedBackend struct {
	Name      string
	Supported []string
}

func (err *ErrUnsupportedBackend) Error() string {
	if len(err.Supported) == 0 {
		return fmt.Sprintf("selected database %q not supported", err.Name)
	}
	return fmt.Sprintf("selected database %q not supported; supported databases are %s", err.Name, strings.Join(err.Supported, ", "))
}

// ErrAmbiguousCacheSpec is returned when the cache sizes of a clustering run are specified
// neither as an explicit list nor as a (count, increment factor) pair, or as both.
type ErrAmbiguousCacheSpec struct {
	Message string
}

func (err *ErrAmbiguousCacheSpec) Error() string {
	return fmt.Sprintf("ambiguous cache specification: %s", err.Message)
}

// ErrInconsistentClusteringFields is returned when only some of the clustering fields are supplied.
// Cause, if set, is the error reported for the first missing field and is reachable through errors.As.
type ErrInconsistentClusteringFields struct {
	Present []string
	Missing []string
	Cause   error
}

func (err *ErrInconsistentClusteringFields) Error() string {
	return fmt.Sprintf(
		"clustering fields must be supplied together: present [%s], missing [%s]",
		strings.Join(err.Present, ", "), strings.Join(err.Missing, ", "))
}

func (err *ErrInconsistentClusteringFields) Unwrap() error {
	return err.Cause
}

// ErrResultsDirectoryUnwritable is returned when the results directory cannot be created or written to.
type ErrResultsDirectoryUnwritable struct {
	Path  string
	Cause error
}

func (err *ErrResultsDirectoryUnwritable) Error() string {
	if err.Cause == nil {
		return fmt.Sprintf("unable to write to results directory %q", err.Path)
	}
	return fmt.Sprintf("unable to write to results directory %q: %s", err.Path, err.Cause)
}

func (err *ErrResultsDirectoryUnwritable) Unwrap() error {
	return err.Cause
}

// ErrArithmeticOverflow is returned when a derived value does not fit in a signed 32-bit integer.
type ErrArithmeticOverflow struct {
	Operation string      // e.g., "factorial"
	Operand   interface{} // The input that caused the overflow
}

func (err *ErrArithmeticOverflow) Error() string {
	return fmt.Sprintf("%s of %v overflows a 32-bit integer", err.Operation, err.Operand)
}

// ErrDatasetUnloadable is returned when the dataset loading service rejects the dataset file.
type ErrDatasetUnloadable struct {
	Path  string
	Cause error
}

func (err *ErrDatasetUnloadable) Error() string {
	return fmt.Sprintf("unable to load dataset %q: %s", err.Path, err.Cause)
}

func (err *ErrDatasetUnloadable) Unwrap() error {
	return err.Cause
}

// KindFromError maps error types to taxonomy kinds.
// Uses errors.As to look through the chain of errors, as opposed to just considering the topmost error in the chain.
// Wrapping errors are checked before the errors they may wrap.
func KindFromError(err error) Kind {
	if err == nil {
		return Unknown
	}

	// Using {} scopes just to re-use the "e" variable name for each case.
	{
		var e *ErrInconsistentClusteringFields
		if errors.As(err, &e) {
			return InconsistentClusteringFields
		}
	}
	{
		var e *ErrResultsDirectoryUnwritable
		if errors.As(err, &e) {
			return ResultsDirectoryUnwritable
		}
	}
	{
		var e *ErrDatasetUnloadable
		if errors.As(err, &e) {
			return DatasetUnloadable
		}
	}
	{
		var e *ErrMissingRequiredField
		if errors.As(err, &e) {
			return MissingRequiredField
		}
	}
	{
		var e *ErrNotFound
		if errors.As(err, &e) {
			return NotFound
		}
	}
	{
		var e *ErrNotReadable
		if errors.As(err, &e) {
			return NotReadable
		}
	}
	{
		var e *ErrUnsupportedBackend
		if errors.As(err, &e) {
			return UnsupportedBackend
		}
	}
	{
		var e *ErrAmbiguousCacheSpec
		if errors.As(err, &e) {
			return AmbiguousCacheSpec
		}
	}
	{
		var e *ErrArithmeticOverflow
		if errors.As(err, &e) {
			return ArithmeticOverflow
		}
	}
	{
		var e *ErrInvalidValue
		if errors.As(err, &e) {
			return InvalidValue
		}
	}

	return Unknown
}
