package cart

import (
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/op/go-logging"
)

// PersistPolicy decides what a storage failure after a mutation does.
// The in-memory mutation is kept under every policy.
type PersistPolicy int

const (
	// LogFailures logs and reports the failure, callers see nil.
	LogFailures PersistPolicy = iota
	// IgnoreFailures drops the failure silently.
	IgnoreFailures
	// RetryFailures retries with backoff, then behaves like LogFailures.
	RetryFailures
	// StrictPersistence returns the *StorageError to the caller.
	StrictPersistence
)

var persistPolicies = map[string]PersistPolicy{
	"log":    LogFailures,
	"ignore": IgnoreFailures,
	"retry":  RetryFailures,
	"strict": StrictPersistence,
}

func ParsePersistPolicy(s string) (PersistPolicy, error) {
	if p, ok := persistPolicies[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return LogFailures, fmt.Errorf("cart: unknown persist policy %q", s)
}

// QuantityPolicy decides what happens to a line whose quantity drops below one.
type QuantityPolicy int

const (
	// KeepQuantity stores whatever the caller passed.
	KeepQuantity QuantityPolicy = iota
	// RemoveNonPositive deletes the line.
	RemoveNonPositive
	// RejectNonPositive leaves the cart untouched and returns ErrInvalidQuantity.
	RejectNonPositive
)

var quantityPolicies = map[string]QuantityPolicy{
	"keep":   KeepQuantity,
	"remove": RemoveNonPositive,
	"reject": RejectNonPositive,
}

func ParseQuantityPolicy(s string) (QuantityPolicy, error) {
	if p, ok := quantityPolicies[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return KeepQuantity, fmt.Errorf("cart: unknown quantity policy %q", s)
}

type Options struct {
	Persist  PersistPolicy
	Quantity QuantityPolicy

	// Retries bounds RetryFailures.
	Retries uint64

	// BackOff builds the retry schedule; a fresh one per save.
	BackOff func() backoff.BackOff

	Logger *logging.Logger

	// OnStorageError receives failures reported under LogFailures and RetryFailures.
	OnStorageError func(error)

	// Scope names the cart in reported changes.
	Scope string

	// OnChange is called under the cart lock after every applied mutation.
	OnChange func(Change)
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Persist:  LogFailures,
		Quantity: KeepQuantity,
		Retries:  3,
		BackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxElapsedTime = 5 * time.Second
			return b
		},
		Logger: log,
	}
}

func WithPersistPolicy(p PersistPolicy) Option {
	return func(o *Options) { o.Persist = p }
}

func WithQuantityPolicy(p QuantityPolicy) Option {
	return func(o *Options) { o.Quantity = p }
}

func WithRetries(n uint64, b func() backoff.BackOff) Option {
	return func(o *Options) {
		o.Retries = n
		if b != nil {
			o.BackOff = b
		}
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func WithErrorHook(fn func(error)) Option {
	return func(o *Options) { o.OnStorageError = fn }
}

func WithScope(scope string) Option {
	return func(o *Options) { o.Scope = scope }
}

func WithChangeHook(fn func(Change)) Option {
	return func(o *Options) { o.OnChange = fn }
}
