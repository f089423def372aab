package inputmask

import (
	"context"
	"sync"
)

// State is the lifecycle position of a Field.
type State uint8

const (
	// StateEmpty means nothing has been entered, or blur cleared the value.
	StateEmpty State = iota
	// StateIncomplete means some required token slot is still unfilled.
	StateIncomplete
	// StateComplete means every required token slot is filled.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateIncomplete:
		return "incomplete"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Snapshot is the observable state of a Field after an event.
type Snapshot struct {
	View     string // value to show in the input
	Model    string // logical value, meaningful only when HasModel
	HasModel bool
	State    State
	Changed  bool // set by Blur when the view differs from the previous blur
}

// Field drives one masked input. It turns input, blur, and model events
// into engine calls and tracks the view and model values between them.
//
// When the mask fails to compile the field keeps working with masking
// disabled: input passes through unchanged and the error is reported
// through SignalMaskDisabled and Err.
//
// A Field is safe for concurrent use.
type Field struct {
	mu sync.Mutex

	name     string
	pattern  string
	cfg      Config
	base     []Option
	mask     *Mask // nil when masking is disabled
	err      error
	triggers map[string]bool

	result    Result
	view      string
	model     string
	hasModel  bool
	fromModel bool   // view was rendered from the model
	touched   bool   // view was produced by input
	source    string // input characters to re-apply after reconfiguration
	committed string // view at the last blur
}

// NewField creates a field for pattern, which may also name a preset.
func NewField(ctx context.Context, pattern string, cfg Config) *Field {
	return newField(ctx, "", pattern, cfg)
}

func newField(ctx context.Context, name, pattern string, cfg Config, base ...Option) *Field {
	f := &Field{name: name, base: base}
	f.configure(ctx, pattern, cfg)
	return f
}

// configure compiles the mask, disabling masking on error.
func (f *Field) configure(ctx context.Context, pattern string, cfg Config) {
	f.pattern = pattern
	f.cfg = cfg
	f.triggers = cfg.triggers()

	opts := make([]Option, 0, len(f.base)+1)
	opts = append(opts, WithContext(ctx))
	opts = append(opts, f.base...)

	m, err := cfg.Compile(pattern, opts...)
	if err != nil {
		f.mask = nil
		f.err = withField(err, f.name)
		emitMaskDisabled(ctx, pattern, f.err)
		return
	}
	f.mask = m
	f.err = nil
}

// Name returns the form field name, if any.
func (f *Field) Name() string { return f.name }

// Err returns the configuration error that disabled masking, or nil.
func (f *Field) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Mask returns the compiled mask, or nil when masking is disabled.
func (f *Field) Mask() *Mask {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mask
}

// Placeholder returns the mask placeholder, or "" when masking is disabled.
func (f *Field) Placeholder() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mask == nil {
		return ""
	}
	return f.mask.Placeholder()
}

// Snapshot returns the current state without changing it.
func (f *Field) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

// Input applies raw text typed by the user.
func (f *Field) Input(_ context.Context, raw string) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input(raw)
	return f.snapshot()
}

// Handle applies raw text when event is one of the configured triggers.
// It reports whether the event was handled.
func (f *Field) Handle(ctx context.Context, event, raw string) (Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.triggers[event] {
		return f.snapshot(), false
	}
	f.input(raw)
	emitFieldHandled(ctx, f.name, event, f.view)
	return f.snapshot(), true
}

// Blur finalizes the value. With clear-on-blur an incomplete typed value is
// discarded along with its model. Snapshot.Changed reports whether the view
// differs from the one committed by the previous blur.
func (f *Field) Blur(ctx context.Context) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mask != nil && f.touched {
		r := f.mask.Finalize(f.result)
		if r.Cleared {
			emitFieldCleared(ctx, f.pattern, f.view)
			f.result = r
			f.view = ""
			f.model, f.hasModel = "", false
			f.touched = false
			f.source = ""
		}
	}

	changed := f.view != f.committed
	f.committed = f.view
	if changed {
		emitFieldChanged(ctx, f.pattern, f.view)
	}

	snap := f.snapshot()
	snap.Changed = changed
	return snap
}

// SetModel renders a model value into the view. The model is kept as given;
// a value that does not complete the mask renders as an empty view.
func (f *Field) SetModel(_ context.Context, model string) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setModel(model)
	return f.snapshot()
}

// SetMask recompiles the field with a new pattern and re-renders the view.
func (f *Field) SetMask(ctx context.Context, pattern string) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configure(ctx, pattern, f.cfg)
	f.rerender()
	return f.snapshot()
}

// SetConfig recompiles the field with new options and re-renders the view.
func (f *Field) SetConfig(ctx context.Context, cfg Config) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configure(ctx, f.pattern, cfg)
	f.rerender()
	return f.snapshot()
}

func (f *Field) input(raw string) {
	f.fromModel = false
	f.touched = true

	if f.mask == nil {
		f.result = Result{}
		f.view = raw
		f.model, f.hasModel = raw, true
		f.source = raw
		return
	}

	f.result = f.mask.Apply(raw)
	f.view = f.result.Display
	f.source = f.result.Unmasked

	// Input that fills nothing leaves an empty model rather than no model.
	if f.result.Filled == 0 {
		f.model, f.hasModel = "", true
		return
	}
	f.model, f.hasModel = f.mask.Value(f.result)
}

func (f *Field) setModel(model string) {
	f.fromModel = true
	f.touched = false
	f.model, f.hasModel = model, true

	if f.mask == nil {
		f.result = Result{}
		f.view = model
		return
	}

	f.view = f.mask.Format(model)
	if f.view == "" {
		f.result = Result{}
		return
	}
	f.result = f.mask.Apply(model)
}

// rerender refreshes the view after the mask changed.
func (f *Field) rerender() {
	switch {
	case f.fromModel:
		f.setModel(f.model)
	case f.touched:
		f.input(f.source)
	}
}

func (f *Field) snapshot() Snapshot {
	return Snapshot{
		View:     f.view,
		Model:    f.model,
		HasModel: f.hasModel,
		State:    f.state(),
	}
}

func (f *Field) state() State {
	if f.mask == nil {
		if f.view == "" {
			return StateEmpty
		}
		return StateComplete
	}
	switch {
	case f.view == "" || f.result.Filled == 0:
		return StateEmpty
	case f.result.Complete:
		return StateComplete
	default:
		return StateIncomplete
	}
}
