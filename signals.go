package inputmask

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for mask events.
var (
	SignalMaskCompiled       = capitan.NewSignal("inputmask.mask.compiled", "Mask pattern compiled")
	SignalMaskDisabled       = capitan.NewSignal("inputmask.mask.disabled", "Mask configuration rejected, input passes through unmasked")
	SignalPlaceholderIgnored = capitan.NewSignal("inputmask.placeholder.ignored", "Placeholder override ignored")
	SignalFieldCleared       = capitan.NewSignal("inputmask.field.cleared", "Incomplete value cleared on blur")
	SignalFieldChanged       = capitan.NewSignal("inputmask.field.changed", "Field value changed since last blur")
	SignalFieldHandled       = capitan.NewSignal("inputmask.field.handled", "Trigger event applied to field")
	SignalBinderCreated      = capitan.NewSignal("inputmask.binder.created", "Binder instantiated")
	SignalViewComplete       = capitan.NewSignal("inputmask.view.complete", "View rendering finished")
	SignalModelComplete      = capitan.NewSignal("inputmask.model.complete", "Model extraction finished")
)

// Keys for typed event data.
var (
	KeyPattern    = capitan.NewStringKey("pattern")
	KeyField      = capitan.NewStringKey("field")
	KeyEvent      = capitan.NewStringKey("event")
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeyValue      = capitan.NewStringKey("value")
	KeySlotCount  = capitan.NewIntKey("slot_count")
	KeyFieldCount = capitan.NewIntKey("field_count")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitMaskCompiled emits an event when a pattern compiles.
func emitMaskCompiled(ctx context.Context, pattern string, slots int) {
	capitan.Emit(ctx, SignalMaskCompiled,
		KeyPattern.Field(pattern),
		KeySlotCount.Field(slots),
	)
}

// emitMaskDisabled reports a configuration error that turned masking off.
func emitMaskDisabled(ctx context.Context, pattern string, err error) {
	capitan.Error(ctx, SignalMaskDisabled,
		KeyPattern.Field(pattern),
		KeyError.Field(err),
	)
}

// emitPlaceholderIgnored reports a placeholder override of the wrong length.
func emitPlaceholderIgnored(ctx context.Context, pattern, placeholder string, err error) {
	capitan.Error(ctx, SignalPlaceholderIgnored,
		KeyPattern.Field(pattern),
		KeyValue.Field(placeholder),
		KeyError.Field(err),
	)
}

// emitFieldCleared emits an event when blur discards an incomplete value.
func emitFieldCleared(ctx context.Context, pattern, display string) {
	capitan.Emit(ctx, SignalFieldCleared,
		KeyPattern.Field(pattern),
		KeyValue.Field(display),
	)
}

// emitFieldChanged emits an event when blur commits a new value.
func emitFieldChanged(ctx context.Context, pattern, display string) {
	capitan.Emit(ctx, SignalFieldChanged,
		KeyPattern.Field(pattern),
		KeyValue.Field(display),
	)
}

// emitFieldHandled emits an event when a trigger event re-applies input.
func emitFieldHandled(ctx context.Context, field, event, display string) {
	capitan.Emit(ctx, SignalFieldHandled,
		KeyField.Field(field),
		KeyEvent.Field(event),
		KeyValue.Field(display),
	)
}

// emitBinderCreated emits an event when a binder is created.
func emitBinderCreated(ctx context.Context, typeName string, fields int) {
	capitan.Emit(ctx, SignalBinderCreated,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
	)
}

// emitViewComplete emits an event when View finishes.
func emitViewComplete(ctx context.Context, typeName string, duration time.Duration, count int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(count),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalViewComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalViewComplete, fields...)
	}
}

// emitModelComplete emits an event when Model finishes.
func emitModelComplete(ctx context.Context, typeName string, duration time.Duration, count int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(count),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalModelComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalModelComplete, fields...)
	}
}
