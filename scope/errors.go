package scope

import (
	"errors"
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// Error message constants.
const (
	ErrMsgSetInsideCase     = "cannot enter a test set while a test case is active"
	ErrMsgCaseInsideCase    = "cannot enter a test case while another test case is active"
	ErrMsgDuplicateProperty = "property is already declared in an enclosing scope"
	ErrMsgPropertyNotFound  = "no such property in the current scope"
	ErrMsgOutOfContext      = "property access outside an active test case"
	ErrMsgBadPattern        = "invalid filter pattern"
)

// Error code constants for categorization.
const (
	ErrCodeUsage   = "SCOPE_USAGE"
	ErrCodeResolve = "SCOPE_RESOLVE"
	ErrCodeFilter  = "SCOPE_FILTER"
)

// Metadata keys attached to errors.
const (
	MetaKeyProperty = "property"
	MetaKeyScope    = "scope"
	MetaKeyTestName = "test_name"
	MetaKeyPattern  = "pattern"
	MetaKeyCause    = "cause"
)

// Sentinel errors for use with errors.Is. Every error returned by this
// package wraps exactly one of these.
var (
	// ErrUsage indicates programmer misuse of the scope nesting rules:
	// entering a set or case while a case is active, or redeclaring a
	// property name that is already visible.
	ErrUsage = errors.New("test scope usage error")

	// ErrPropertyNotFound indicates a read of a property name that is not
	// declared anywhere in the active nesting stack.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrOutOfContext indicates a property read while no test case is
	// executing.
	ErrOutOfContext = errors.New("no test case active")

	// ErrBadPattern indicates that a filter pattern failed to compile. The
	// previously configured filter remains in effect.
	ErrBadPattern = errors.New("bad filter pattern")
)

func newSetInsideCaseError(name string, activeName string) error {
	return cuserr.WrapStdError(ErrUsage, ErrCodeUsage,
		fmt.Sprintf("%s: set %q", ErrMsgSetInsideCase, name)).
		WithMetadata(MetaKeyScope, name).
		WithMetadata(MetaKeyTestName, activeName)
}

func newCaseInsideCaseError(name string, activeName string) error {
	return cuserr.WrapStdError(ErrUsage, ErrCodeUsage,
		fmt.Sprintf("%s: case %q", ErrMsgCaseInsideCase, name)).
		WithMetadata(MetaKeyScope, name).
		WithMetadata(MetaKeyTestName, activeName)
}

func newDuplicatePropertyError(property string, fullName string) error {
	return cuserr.WrapStdError(ErrUsage, ErrCodeUsage,
		fmt.Sprintf("%s: %q (in %q)", ErrMsgDuplicateProperty, property, fullName)).
		WithMetadata(MetaKeyProperty, property).
		WithMetadata(MetaKeyTestName, fullName)
}

func newPropertyNotFoundError(property string, fullName string) error {
	return cuserr.WrapStdError(ErrPropertyNotFound, ErrCodeResolve,
		fmt.Sprintf("%s: %q (in %q)", ErrMsgPropertyNotFound, property, fullName)).
		WithMetadata(MetaKeyProperty, property).
		WithMetadata(MetaKeyTestName, fullName)
}

func newOutOfContextError(property string) error {
	return cuserr.WrapStdError(ErrOutOfContext, ErrCodeResolve,
		fmt.Sprintf("%s: %q", ErrMsgOutOfContext, property)).
		WithMetadata(MetaKeyProperty, property)
}

func newBadPatternError(pattern string, cause error) error {
	return cuserr.WrapStdError(ErrBadPattern, ErrCodeFilter,
		fmt.Sprintf("%s: %q: %s", ErrMsgBadPattern, pattern, cause)).
		WithMetadata(MetaKeyPattern, pattern).
		WithMetadata(MetaKeyCause, cause.Error())
}
