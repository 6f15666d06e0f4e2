package sanitizer

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// Cleaner turns a raw field value into a safe one.
type Cleaner interface {
	Clean(v any) (any, error)
}

// CleanerFunc adapts a plain function to Cleaner.
type CleanerFunc func(v any) (any, error)

func (f CleanerFunc) Clean(v any) (any, error) {
	return f(v)
}

// Policy names a markup policy.
type Policy string

const (
	// PolicyStrict removes all markup. Script and style content is dropped.
	PolicyStrict Policy = "strict"
	// PolicyUGC keeps the formatting markup commonly allowed in user content.
	PolicyUGC Policy = "ugc"
)

// ParsePolicy converts a policy name. An empty name yields PolicyStrict.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyStrict, nil
	case PolicyStrict, PolicyUGC:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p Policy) build() (*bluemonday.Policy, error) {
	switch p {
	case PolicyStrict, "":
		return bluemonday.StrictPolicy(), nil
	case PolicyUGC:
		return bluemonday.UGCPolicy(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(p))
}

// Engine cleans strings with a bluemonday policy followed by an optional
// pipeline of string transforms. An Engine is safe for concurrent use.
type Engine struct {
	policy    *bluemonday.Policy
	normalize bool
	post      []func(string) string
}

// Option configures an Engine.
type Option func(*Engine)

// WithTransforms appends transforms applied after markup is removed.
func WithTransforms(transforms ...func(string) string) Option {
	return func(e *Engine) {
		for _, fn := range transforms {
			if fn != nil {
				e.post = append(e.post, fn)
			}
		}
	}
}

// WithNormalization converts input to Unicode NFC before cleaning so that
// visually identical values are stored identically.
func WithNormalization() Option {
	return func(e *Engine) { e.normalize = true }
}

// WithBluemonday replaces the named policy with a caller-built one.
func WithBluemonday(p *bluemonday.Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// New creates an Engine for the given policy.
func New(policy Policy, opts ...Option) (*Engine, error) {
	bm, err := policy.build()
	if err != nil {
		return nil, err
	}
	e := &Engine{policy: bm}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// MustNew is like New but panics on an unknown policy.
func MustNew(policy Policy, opts ...Option) *Engine {
	e, err := New(policy, opts...)
	if err != nil {
		panic(fmt.Sprintf("sanitizer: %v", err))
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return MustNew(PolicyStrict, WithTransforms(RemoveNullBytes, Trim))
})

// Default returns the shared strict engine.
func Default() *Engine {
	return defaultEngine()
}

// CleanString applies the engine to a single string.
func (e *Engine) CleanString(s string) string {
	if e.normalize {
		s = norm.NFC.String(s)
	}
	return Apply(e.policy.Sanitize(s), e.post...)
}

// Clean implements Cleaner. Supported values are string, *string, []byte,
// []string and the nullable strings sql.NullString, sql.Null[string] and
// pgtype.Text; the result has the same type as the input. A nil *string and a
// NULL nullable string are returned unchanged. Any other type yields
// ErrUnsupportedValue.
func (e *Engine) Clean(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return e.CleanString(val), nil
	case *string:
		if val == nil {
			return val, nil
		}
		cleaned := e.CleanString(*val)
		return &cleaned, nil
	case []byte:
		return []byte(e.CleanString(string(val))), nil
	case []string:
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = e.CleanString(s)
		}
		return out, nil
	case sql.NullString:
		if val.Valid {
			val.String = e.CleanString(val.String)
		}
		return val, nil
	case sql.Null[string]:
		if val.Valid {
			val.V = e.CleanString(val.V)
		}
		return val, nil
	case pgtype.Text:
		if val.Valid {
			val.String = e.CleanString(val.String)
		}
		return val, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
