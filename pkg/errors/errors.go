// Package errors provides error handling and the warning system for the
// whole project. It is inspired by scikit-learn's and imbalanced-learn's
// warning/exception machinery and carries structured error information
// for every failure a resampler can produce.
package errors

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

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
		// Default handler logs to standard error.
		log.Printf("imbgo-Warning: %v\n", w)
	}
	// zerolog warn hook (lazily installed to avoid an import cycle).
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler.
// It controls how non-fatal conditions such as DataConversionWarning are
// surfaced to the application.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the zerolog warning sink (kept separate to
// avoid a circular import with pkg/log).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When a zerolog sink is installed it is preferred,
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

// DataConversionWarning is emitted when input data is implicitly converted
// to another representation, e.g. a mixed table coerced to a dense float
// matrix before smoothing.
type DataConversionWarning struct {
	FromType string
	ToType   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("data converted from %s to %s. Reason: %s", w.FromType, w.ToType, w.Reason)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("from_type", w.FromType).
		Str("to_type", w.ToType).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning creates a new DataConversionWarning.
func NewDataConversionWarning(from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{FromType: from, ToType: to, Reason: reason}
}

// UndefinedMetricWarning is emitted when an evaluation metric is not defined
// for the given data, e.g. sensitivity when the positive class has no
// samples. Result holds the value returned under that condition.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when a post-fit artifact such as the sample
// provenance is requested before FitResample has been called.
type NotFittedError struct {
	SamplerName string
	Method      string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("imbgo: %s: this sampler is not fitted yet. Call FitResample() before using %s()", e.SamplerName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("sampler_name", e.SamplerName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(samplerName, method string) error {
	err := &NotFittedError{SamplerName: samplerName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data dimensions disagree with the
// expected shape, e.g. X rows vs. label-vector length.
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
	return fmt.Sprintf("imbgo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
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

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when a parameter fails validation, e.g. a
// negative shrinkage factor or an unknown sampling-strategy mode.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("imbgo: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is inappropriate for the
// operation, mirroring Python's ValueError.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("imbgo: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Resampling-specific error types
//
// ===========================================================================

// EmptyPoolError is returned when a class referenced by the target mapping
// has no samples in the label vector: the eligible pool to bootstrap from
// is empty, which indicates an inconsistent mapping/label pairing.
type EmptyPoolError struct {
	Op    string
	Class int
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("imbgo: %s: class %d has no samples in y; cannot bootstrap from an empty pool", e.Op, e.Class)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyPoolError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("class", e.Class).
		Str("type", "EmptyPoolError")
}

// NewEmptyPoolError creates an EmptyPoolError with a stack trace attached.
func NewEmptyPoolError(op string, class int) error {
	err := &EmptyPoolError{Op: op, Class: class}
	return errors.WithStack(err)
}

// IncompleteShrinkageError is returned when a per-class shrinkage mapping
// does not cover every class in the target mapping. MissingClasses lists
// the uncovered classes in ascending order.
type IncompleteShrinkageError struct {
	MissingClasses []int
}

func (e *IncompleteShrinkageError) Error() string {
	parts := make([]string, len(e.MissingClasses))
	for i, c := range e.MissingClasses {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("imbgo: shrinkage should contain a shrinkage factor for each class that will be resampled. The missing classes are: [%s]", strings.Join(parts, ", "))
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *IncompleteShrinkageError) MarshalZerologObject(event *zerolog.Event) {
	event.Ints("missing_classes", e.MissingClasses).
		Str("type", "IncompleteShrinkageError")
}

// NewIncompleteShrinkageError creates an IncompleteShrinkageError with a
// stack trace attached. The missing class list is copied and sorted so the
// message is deterministic.
func NewIncompleteShrinkageError(missing []int) error {
	sorted := make([]int, len(missing))
	copy(sorted, missing)
	sort.Ints(sorted)
	err := &IncompleteShrinkageError{MissingClasses: sorted}
	return errors.WithStack(err)
}

// NonNumericDataError is returned when a smoothed bootstrap is requested on
// data that cannot be coerced to a purely numeric matrix. Err carries the
// underlying coercion failure.
type NonNumericDataError struct {
	Op  string
	Err error
}

func (e *NonNumericDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("imbgo: %s: when smoothed bootstrap is enabled, X needs to contain only numerical data to later generate a smoothed bootstrap sample: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("imbgo: %s: when smoothed bootstrap is enabled, X needs to contain only numerical data to later generate a smoothed bootstrap sample", e.Op)
}

func (e *NonNumericDataError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NonNumericDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		AnErr("cause", e.Err).
		Str("type", "NonNumericDataError")
}

// NewNonNumericDataError creates a NonNumericDataError wrapping the
// underlying coercion failure, with a stack trace attached.
func NewNonNumericDataError(op string, cause error) error {
	err := &NonNumericDataError{Op: op, Err: cause}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
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

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}
