package content

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/logger"
	"github.com/spigell/college-compass/internal/utils"
)

// Wrapper keys a generator may nest the document under. Only one level is unwrapped.
const (
	WrapperRoadmap  = "roadmap"
	WrapperResponse = "response"
)

const defaultMaxLogLength = 200

// State is the presentation state of an interpreted payload.
type State int

const (
	StateLoading State = iota
	StateEmpty
	StateStructured
	StateRawFallback
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StateStructured:
		return "structured"
	case StateRawFallback:
		return "raw_fallback"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the outcome of one interpretation.
// Content is set only for StateStructured and Raw only for StateRawFallback.
// Err records why a payload fell back to raw text; it is informational.
type Result struct {
	State   State
	Content *Canonical
	Raw     string
	Err     error
}

// Interpreter turns generator payloads into Results. It holds only
// configuration and may be shared.
type Interpreter struct {
	logger    *zap.Logger
	fields    []string
	maxLogLen int
}

type Option func(*Interpreter)

func WithLogger(l *zap.Logger) Option {
	return func(i *Interpreter) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithFields replaces the recognized field names and their display order.
func WithFields(names ...string) Option {
	return func(i *Interpreter) {
		i.fields = append([]string(nil), names...)
	}
}

// WithMaxLogLength limits content previews in log entries.
func WithMaxLogLength(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.maxLogLen = n
		}
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{
		logger:    zap.NewNop(),
		fields:    append([]string(nil), DefaultFields...),
		maxLogLen: defaultMaxLogLength,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Interpret resolves raw into a Result. It never fails: payloads that cannot
// be decoded end in StateRawFallback with the original text.
//
// raw may be a string, []byte or json.RawMessage holding text, a
// map[string]any holding an already decoded object, or any other value that
// encodes to a JSON object.
func (i *Interpreter) Interpret(raw any, loading bool) Result {
	if loading {
		return Result{State: StateLoading}
	}

	switch v := raw.(type) {
	case nil:
		return Result{State: StateEmpty}
	case string:
		return i.interpretText(v)
	case []byte:
		return i.interpretText(string(v))
	case json.RawMessage:
		return i.interpretText(string(v))
	case map[string]any:
		if v == nil {
			return Result{State: StateEmpty}
		}
		return i.structured(v)
	default:
		return i.interpretValue(v)
	}
}

func (i *Interpreter) interpretText(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{State: StateEmpty}
	}

	var candidate any
	if err := json.Unmarshal([]byte(StripFences(text)), &candidate); err != nil {
		return i.fallback(text, err)
	}

	object, ok := candidate.(map[string]any)
	if !ok {
		return i.fallback(text, fmt.Errorf("%w: got %s", ErrNotObject, kindOf(candidate)))
	}

	return i.structured(object)
}

// interpretValue normalizes arbitrary Go values through their JSON encoding.
func (i *Interpreter) interpretValue(v any) Result {
	encoded, err := json.Marshal(v)
	if err != nil {
		return i.fallback(fmt.Sprintf("%v", v), err)
	}

	var candidate any
	if err := json.Unmarshal(encoded, &candidate); err != nil {
		return i.fallback(string(encoded), err)
	}

	switch object := candidate.(type) {
	case nil:
		return Result{State: StateEmpty}
	case map[string]any:
		return i.structured(object)
	default:
		return i.fallback(string(encoded), fmt.Errorf("%w: got %s", ErrNotObject, kindOf(candidate)))
	}
}

func (i *Interpreter) structured(candidate map[string]any) Result {
	canonical, errs := newCanonical(unwrap(candidate), i.fields)

	for _, err := range errs {
		i.logger.Debug("section kept without typed view", zap.Error(err))
	}

	i.logger.Debug("content interpreted",
		zap.String(logger.FieldContentState, StateStructured.String()),
		zap.Strings("sections", canonical.Sections()),
		zap.Strings("extras", canonical.Extras()),
	)

	return Result{State: StateStructured, Content: canonical}
}

func (i *Interpreter) fallback(text string, err error) Result {
	i.logger.Warn("content is not structured, falling back to raw text",
		zap.String(logger.FieldContentState, StateRawFallback.String()),
		zap.Error(err),
		zap.Int("content_length", utf8.RuneCountInString(text)),
		zap.String("content_preview", utils.TruncateForLog(text, i.maxLogLen)),
	)

	return Result{State: StateRawFallback, Raw: text, Err: err}
}

// unwrap returns the object nested under a wrapper key, preferring roadmap
// over response, or the candidate itself.
func unwrap(candidate map[string]any) map[string]any {
	if nested, ok := candidate[WrapperRoadmap].(map[string]any); ok {
		return nested
	}
	if nested, ok := candidate[WrapperResponse].(map[string]any); ok {
		return nested
	}
	return candidate
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
