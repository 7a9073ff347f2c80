package types

import (
	"fmt"
	"strings"
)

// PublishMethod is the way a module's assets end up in the public root
type PublishMethod string

const (
	// MethodRelativeSymlink links the target to the origin with a path relative to the target's parent
	MethodRelativeSymlink PublishMethod = "relative symlink"

	// MethodAbsoluteSymlink links the target to the absolute origin path
	MethodAbsoluteSymlink PublishMethod = "absolute symlink"

	// MethodCopy mirrors the origin directory into the target
	MethodCopy PublishMethod = "copy"
)

// PublishMethods lists the methods from most to least preferred.
var PublishMethods = []PublishMethod{MethodRelativeSymlink, MethodAbsoluteSymlink, MethodCopy}

// String returns the human-readable method name
func (m PublishMethod) String() string {
	return string(m)
}

// IsSymlink reports whether the method produces a link rather than a copy
func (m PublishMethod) IsSymlink() bool {
	return m == MethodRelativeSymlink || m == MethodAbsoluteSymlink
}

// ParsePublishMethod accepts both the short flag form (relative, absolute,
// copy) and the full method names. An empty string selects the default.
func ParsePublishMethod(s string) (PublishMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relative", "relative-symlink", string(MethodRelativeSymlink):
		return MethodRelativeSymlink, nil
	case "absolute", "absolute-symlink", "symlink", string(MethodAbsoluteSymlink):
		return MethodAbsoluteSymlink, nil
	case "copy", "hard-copy":
		return MethodCopy, nil
	default:
		return "", fmt.Errorf("unknown publish method: %s", s)
	}
}

// Outcome classifies one module's publish result
type Outcome string

const (
	// OutcomeOk means the requested method was used
	OutcomeOk Outcome = "ok"
	// OutcomeWarning means a fallback method was used
	OutcomeWarning Outcome = "warning"
	// OutcomeError means the module could not be published
	OutcomeError Outcome = "error"
)

// PublishResult is the record produced for each module on install
type PublishResult struct {
	Name    string
	Outcome Outcome
	// Method is the method actually used; empty on error
	Method PublishMethod
	Target string
	Err    error
}

// Detail returns the method used or, for failed modules, the error text
func (r PublishResult) Detail() string {
	if r.Outcome == OutcomeError && r.Err != nil {
		return r.Err.Error()
	}
	return r.Method.String()
}
