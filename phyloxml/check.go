package phyloxml

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Rule restricts the values a string field may take.
type Rule interface {
	Match(s string) bool
	String() string
}

type patternRule struct {
	re *regexp.Regexp
}

// Pattern returns a rule matching values that match expr in their entirety.
// It panics if expr does not compile.
func Pattern(expr string) Rule {
	return patternRule{regexp.MustCompile(`^(?:` + expr + `)$`)}
}

func (r patternRule) Match(s string) bool { return r.re.MatchString(s) }
func (r patternRule) String() string     { return "pattern " + r.re.String() }

type setRule struct {
	name    string
	members map[string]struct{}
}

// OneOf returns a rule matching only the given values. The name is used to
// describe the vocabulary in warnings.
func OneOf(name string, values ...string) Rule {
	members := make(map[string]struct{}, len(values))
	for _, v := range values {
		members[v] = struct{}{}
	}
	return setRule{name, members}
}

func (r setRule) Match(s string) bool {
	_, ok := r.members[s]
	return ok
}

func (r setRule) String() string { return "one of the " + r.name }

type numberRule struct{}

// Number is a rule matching decimal or scientific floating point numbers.
var Number Rule = numberRule{}

func (numberRule) Match(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func (numberRule) String() string { return "a number" }

// Warning describes a restricted string that does not conform to its rule.
// A Warning is also an error, which is what a strict Checker returns.
type Warning struct {
	Element string
	Field   string
	Value   string
	Rule    Rule
}

func (w *Warning) Error() string {
	return fmt.Sprintf("phyloxml: %s.%s: string %q doesn't match %s",
		w.Element, w.Field, w.Value, w.Rule)
}

// Mode is the policy a Checker applies to non-conforming values.
type Mode int

const (
	// Permissive logs each warning, records it and lets construction succeed.
	Permissive Mode = iota

	// Collect records each warning without logging it.
	Collect

	// Strict turns the first warning into an error.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Collect:
		return "collect"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts the name of a mode, as returned by Mode.String, back
// into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permissive", "":
		return Permissive, nil
	case "collect":
		return Collect, nil
	case "strict":
		return Strict, nil
	}
	return 0, fmt.Errorf("phyloxml: unknown check mode '%s'", s)
}

// Option configures a Checker.
type Option func(*Checker)

// WithMode sets the policy applied to non-conforming values.
func WithMode(m Mode) Option {
	return func(c *Checker) {
		c.mode = m
	}
}

// WithLogger sets the logger used in Permissive mode. A nil logger means
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		c.log = l
	}
}

// Checker checks restricted strings and applies a Mode to the failures.
// A Checker may be shared by multiple goroutines.
type Checker struct {
	mode Mode
	log  *slog.Logger

	mu       sync.Mutex
	warnings []*Warning
}

// NewChecker returns a Permissive checker logging to slog.Default(), unless
// changed by opts.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{mode: Permissive}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultMu      sync.RWMutex
	defaultChecker = NewChecker()
)

// DefaultChecker returns the checker used by the New functions of this
// package.
func DefaultChecker() *Checker {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultChecker
}

// SetDefaultChecker replaces the checker used by the New functions and
// returns the previous one. A nil checker restores a fresh permissive one.
func SetDefaultChecker(c *Checker) *Checker {
	if c == nil {
		c = NewChecker()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	old := defaultChecker
	defaultChecker = c
	return old
}

// Mode returns the policy of the checker.
func (c *Checker) Mode() Mode {
	return c.mode
}

// Check tests a single value against a rule. Empty values are absent and
// always pass. In Strict mode a failure is returned as a *Warning. In the
// other modes the failure is recorded (and logged when Permissive) and nil
// is returned.
func (c *Checker) Check(element, field, value string, rule Rule) error {
	if len(value) == 0 || rule.Match(value) {
		return nil
	}
	w := &Warning{Element: element, Field: field, Value: value, Rule: rule}
	if c.mode == Strict {
		return w
	}

	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()

	if c.mode == Permissive {
		c.logger().Warn("non-compliant phyloXML value",
			slog.String("element", element),
			slog.String("field", field),
			slog.String("value", value),
			slog.String("rule", rule.String()))
	}
	return nil
}

// Warnings returns a copy of the warnings recorded so far.
func (c *Checker) Warnings() []*Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Warning(nil), c.warnings...)
}

// Reset forgets all recorded warnings.
func (c *Checker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = nil
}

func (c *Checker) logger() *slog.Logger {
	if c.log == nil {
		return slog.Default()
	}
	return c.log
}

// checks runs a list of checks, stopping at the first error.
func (c *Checker) checks(element string, fields ...fieldCheck) error {
	for _, f := range fields {
		if err := c.Check(element, f.name, f.value, f.rule); err != nil {
			return err
		}
	}
	return nil
}

type fieldCheck struct {
	name  string
	value string
	rule  Rule
}

func checker(c *Checker) *Checker {
	if c == nil {
		return DefaultChecker()
	}
	return c
}
