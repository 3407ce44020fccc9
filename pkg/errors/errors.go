// Package errors provides the structured error and warning system used across
// lncbench. Errors carry typed context, marshal themselves into zerolog events,
// and are created with cockroachdb/errors stack traces attached.
package errors

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("lncbench-warning: %v\n", w)
	}
	// zerolog sink, set lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler.
// It controls how warnings such as UndefinedMetricWarning are processed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // drop all warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. The zerolog sink takes precedence when installed;
// otherwise the plain handler is used.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// UndefinedMetricWarning is raised when an evaluation metric cannot be
// computed, for example F1 when precision and recall are both zero. The
// metric is reported with the documented fallback value instead.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // value returned under this condition
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds structured warning context to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	Structural errors: abort the whole evaluation flow
//
// ===========================================================================

// InsufficientSamplesError is returned when a partition or balancing request
// asks for more samples of a class than the dataset holds. This is a
// configuration error and aborts the caller's run.
type InsufficientSamplesError struct {
	Op        string
	Class     string
	Requested int
	Available int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("lncbench: %s: class %q has %d samples, %d requested",
		e.Op, e.Class, e.Available, e.Requested)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *InsufficientSamplesError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("class", e.Class).
		Int("requested", e.Requested).
		Int("available", e.Available).
		Str("type", "InsufficientSamplesError")
}

// NewInsufficientSamplesError creates an InsufficientSamplesError with a stack trace.
func NewInsufficientSamplesError(op, class string, requested, available int) error {
	err := &InsufficientSamplesError{Op: op, Class: class, Requested: requested, Available: available}
	return errors.WithStack(err)
}

// DegenerateFeatureError is returned when a zero-variance feature reaches the
// scaler. Near-zero-variance features must be filtered before scaling, so
// this aborts the caller's run rather than being patched over.
type DegenerateFeatureError struct {
	Op      string
	Feature string
	Index   int
}

func (e *DegenerateFeatureError) Error() string {
	if e.Feature != "" {
		return fmt.Sprintf("lncbench: %s: feature %q (column %d) has zero variance on the training split",
			e.Op, e.Feature, e.Index)
	}
	return fmt.Sprintf("lncbench: %s: feature column %d has zero variance on the training split", e.Op, e.Index)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *DegenerateFeatureError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("feature", e.Feature).
		Int("column", e.Index).
		Str("type", "DegenerateFeatureError")
}

// NewDegenerateFeatureError creates a DegenerateFeatureError with a stack trace.
func NewDegenerateFeatureError(op, feature string, index int) error {
	err := &DegenerateFeatureError{Op: op, Feature: feature, Index: index}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Per-run errors: isolated inside a sweep
//
// ===========================================================================

// FitDivergenceError is returned when an underlying classifier fails to
// converge. It is surfaced on the failing run only; a sweep marks that run
// failed and continues with the remaining configurations.
type FitDivergenceError struct {
	Algorithm  string
	Iterations int
	Reason     string
}

func (e *FitDivergenceError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("lncbench: %s failed to converge after %d iterations: %s",
			e.Algorithm, e.Iterations, e.Reason)
	}
	return fmt.Sprintf("lncbench: %s failed to converge after %d iterations", e.Algorithm, e.Iterations)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *FitDivergenceError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("algorithm", e.Algorithm).
		Int("iterations", e.Iterations).
		Str("reason", e.Reason).
		Str("type", "FitDivergenceError")
}

// NewFitDivergenceError creates a FitDivergenceError with a stack trace.
func NewFitDivergenceError(algorithm string, iterations int, reason string) error {
	err := &FitDivergenceError{Algorithm: algorithm, Iterations: iterations, Reason: reason}
	return errors.WithStack(err)
}

// FitTimeoutError is returned when a fit call exceeds the harness deadline.
// Handled exactly like FitDivergenceError: the run fails, the sweep continues.
type FitTimeoutError struct {
	Algorithm string
	Timeout   time.Duration
}

func (e *FitTimeoutError) Error() string {
	return fmt.Sprintf("lncbench: %s fit exceeded deadline of %s", e.Algorithm, e.Timeout)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *FitTimeoutError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("algorithm", e.Algorithm).
		Dur("timeout", e.Timeout).
		Str("type", "FitTimeoutError")
}

// NewFitTimeoutError creates a FitTimeoutError with a stack trace.
func NewFitTimeoutError(algorithm string, timeout time.Duration) error {
	err := &FitTimeoutError{Algorithm: algorithm, Timeout: timeout}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Generic estimator errors
//
// ===========================================================================

// NotFittedError is returned when Predict or Transform is called on an
// estimator before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("lncbench: %s: this estimator is not fitted yet. Call Fit() before using %s()",
		e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input dimensions differ from what an
// estimator or metric expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("lncbench: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when an input parameter fails validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lncbench: validation failed for parameter '%s': %s (got: %v)",
		e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is unsuitable, for example an
// empty vector passed to a metric.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("lncbench: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general error raised by an estimator.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lncbench: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("lncbench: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when empty data is passed in.
	ErrEmptyData = New("empty data")

	// ErrNoPositives is returned when an evaluation set has no positive samples.
	ErrNoPositives = New("no positive samples")

	// ErrNoNegatives is returned when an evaluation set has no negative samples.
	ErrNoNegatives = New("no negative samples")
)
