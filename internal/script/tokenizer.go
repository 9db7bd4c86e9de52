package script

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/log"
)

// DefaultTimeout bounds a single call into the script.
const DefaultTimeout = 100 * time.Millisecond

// Tokenizer is a colorize.Tokenizer backed by a Lua script. The first
// failing call disables it; Err reports why.
type Tokenizer struct {
	mu sync.Mutex

	L  *lua.LState
	fn *lua.LFunction

	timeout time.Duration
	logger  *log.Logger

	err    error
	closed bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithTimeout sets the time limit for loading the script and for each
// token call.
func WithTimeout(d time.Duration) Option {
	return func(t *Tokenizer) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithLogger sets the logger used to report script failures.
func WithLogger(l *log.Logger) Option {
	return func(t *Tokenizer) {
		if l != nil {
			t.logger = l
		}
	}
}

// New runs source in a fresh sandbox and returns a tokenizer for it.
func New(source string, opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		timeout: DefaultTimeout,
		logger:  log.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	L, err := newSandbox()
	if err != nil {
		return nil, err
	}
	t.L = L

	if err := t.run(func() error { return L.DoString(source) }); err != nil {
		L.Close()
		return nil, fmt.Errorf("run script: %w", err)
	}

	if fn, ok := L.GetGlobal("token").(*lua.LFunction); ok {
		t.fn = fn
	}
	return t, nil
}

// LoadFile reads and runs the script at path.
func LoadFile(path string, opts ...Option) (*Tokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	t, err := New(string(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.logger = t.logger.WithField("script", path)
	return t, nil
}

// run executes fn with the call timeout installed.
func (t *Tokenizer) run(fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()
	t.L.SetContext(ctx)
	defer t.L.RemoveContext()
	return fn()
}

// HasToken reports whether the script defines a token function.
func (t *Tokenizer) HasToken() bool {
	return t.fn != nil
}

// Token implements colorize.Tokenizer.
func (t *Tokenizer) Token(line []rune, start int) (int, document.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.fn == nil || t.err != nil {
		return 0, document.ColorText
	}

	rest := string(line[start:])
	err := t.run(func() error {
		return t.L.CallByParam(lua.P{Fn: t.fn, NRet: 2, Protect: true},
			lua.LString(rest), lua.LNumber(start+1))
	})
	if err != nil {
		t.fail(fmt.Errorf("token: %w", err))
		return 0, document.ColorText
	}

	size, name := t.L.Get(-2), t.L.Get(-1)
	t.L.Pop(2)

	n, color, err := parseResult(rest, size, name)
	if err != nil {
		t.fail(err)
		return 0, document.ColorText
	}
	return n, color
}

// parseResult converts the script's byte length and color name into a
// glyph count and color.
func parseResult(rest string, size, name lua.LValue) (int, document.Color, error) {
	if size == lua.LNil {
		return 0, document.ColorText, nil
	}
	num, ok := size.(lua.LNumber)
	if !ok {
		return 0, document.ColorText, fmt.Errorf("%w: length is %s", ErrInvalidResult, size.Type())
	}
	bytes := int(num)
	if bytes <= 0 {
		return 0, document.ColorText, nil
	}
	if bytes > len(rest) {
		return 0, document.ColorText, fmt.Errorf("%w: length %d exceeds %d", ErrInvalidResult, bytes, len(rest))
	}

	color := document.ColorText
	if name != lua.LNil {
		c, ok := document.ParseColor(lua.LVAsString(name))
		if !ok {
			return 0, document.ColorText, fmt.Errorf("%w: unknown color %q", ErrInvalidResult, name.String())
		}
		color = c
	}
	return utf8.RuneCountInString(rest[:bytes]), color, nil
}

func (t *Tokenizer) fail(err error) {
	t.err = err
	t.logger.Warn("lua tokenizer disabled: %v", err)
}

// Err returns the error that disabled the tokenizer, if any.
func (t *Tokenizer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Close releases the Lua state.
func (t *Tokenizer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.L.Close()
	t.closed = true
	return nil
}
