package inputmask

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Struct tags read by Binder.
const (
	TagMask        = "mask"
	TagMode        = "mask.mode"
	TagPlaceholder = "mask.placeholder"
)

func init() {
	// Register mask tags with sentinel
	sentinel.Tag(TagMask)
	sentinel.Tag(TagMode)
	sentinel.Tag(TagPlaceholder)
}

var (
	binders   = make(map[reflect.Type]any)
	bindersMu sync.RWMutex
)

// Binder applies masks to the tagged string fields of a struct type.
// Use View to render model values for display and Model to reduce display
// values to logical values.
//
//	type Contact struct {
//	    Name  string
//	    Phone string `mask:"phone"`
//	    Birth string `mask:"99/99/9999" mask.mode:"masked"`
//	}
//
// Binders are immutable after construction and safe for concurrent use.
type Binder[T Cloner[T]] struct {
	plans    []fieldPlan
	masks    map[string]*Mask
	typeName string
}

// fieldPlan describes how to reach and mask a single field.
type fieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // field name for error messages
	ptrIndices []int  // indices where pointer dereference is needed
	isSlice    bool   // true if field is []string
	isMap      bool   // true if field is map[K]string
	mask       *Mask
}

// NewBinder scans T for mask tags and compiles each declared mask.
// Invalid tags and patterns are reported as *ConfigError.
func NewBinder[T Cloner[T]]() (*Binder[T], error) {
	meta := sentinel.Scan[T]()
	b := &Binder[T]{
		masks:    make(map[string]*Mask),
		typeName: meta.TypeName,
	}

	path := map[reflect.Type]bool{reflect.TypeFor[T](): true}
	if err := b.buildPlans(meta, nil, nil, "", path); err != nil {
		return nil, err
	}

	emitBinderCreated(context.Background(), b.typeName, len(b.plans))
	return b, nil
}

// UseBinder returns a cached binder for T or builds a new one.
func UseBinder[T Cloner[T]]() (*Binder[T], error) {
	typ := reflect.TypeFor[T]()

	bindersMu.RLock()
	if cached, ok := binders[typ]; ok {
		bindersMu.RUnlock()
		return cached.(*Binder[T]), nil
	}
	bindersMu.RUnlock()

	bindersMu.Lock()
	defer bindersMu.Unlock()

	if cached, ok := binders[typ]; ok {
		return cached.(*Binder[T]), nil
	}

	b, err := NewBinder[T]()
	if err != nil {
		return nil, err
	}
	binders[typ] = b
	return b, nil
}

// Masks returns the compiled masks keyed by field path.
func (b *Binder[T]) Masks() map[string]*Mask {
	out := make(map[string]*Mask, len(b.masks))
	for k, v := range b.masks {
		out[k] = v
	}
	return out
}

// buildPlans recursively processes fields and nested structs. path holds the
// struct types on the current descent; a pointer back to one of them is not
// followed.
func (b *Binder[T]) buildPlans(meta sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string, path map[reflect.Type]bool) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		// Handle nested structs
		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				path[field.ReflectType] = true
				err := b.buildPlans(*nested, fullIndex, ptrIndices, fullName, path)
				delete(path, field.ReflectType)
				if err != nil {
					return err
				}
			}
			continue
		}

		// Handle pointer to struct
		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			elem := field.ReflectType.Elem()
			if path[elem] {
				continue
			}
			if nested := scanNestedType(elem); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				path[elem] = true
				err := b.buildPlans(*nested, fullIndex, newPtrIndices, fullName, path)
				delete(path, elem)
				if err != nil {
					return err
				}
			}
			continue
		}

		pattern, ok := field.Tags[TagMask]
		if !ok {
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String
		if !isString && !isSlice && !isMap {
			return &ConfigError{Err: ErrInvalidTag, Token: rt.String(), Field: fullName}
		}

		cfg := Config{
			Placeholder: field.Tags[TagPlaceholder],
			ValueMode:   ValueMode(field.Tags[TagMode]),
		}
		m, err := cfg.Compile(pattern)
		if err != nil {
			return withField(err, fullName)
		}

		b.plans = append(b.plans, fieldPlan{
			index:      fullIndex,
			name:       fullName,
			ptrIndices: ptrIndices,
			isSlice:    isSlice,
			isMap:      isMap,
			mask:       m,
		})
		b.masks[fullName] = m
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseMaskTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}

// parseMaskTags extracts mask tags from a struct tag.
func parseMaskTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range []string{TagMask, TagMode, TagPlaceholder} {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}

// View returns a clone of obj with every masked field rendered for display.
// Values that do not complete their mask render as empty strings.
func (b *Binder[T]) View(ctx context.Context, obj *T) (*T, error) {
	if obj == nil {
		return nil, nil
	}

	start := time.Now()
	var retErr error
	defer func() {
		emitViewComplete(ctx, b.typeName, time.Since(start), len(b.plans), retErr)
	}()

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	if v, ok := any(&clone).(Viewable); ok {
		if err := v.View(b.Masks()); err != nil {
			retErr = fmt.Errorf("view: %w", err)
			return nil, retErr
		}
		return &clone, nil
	}

	b.each(&clone, func(plan fieldPlan, _ string, value string) string {
		return plan.mask.Format(value)
	})
	return &clone, nil
}

// Model returns a clone of obj with every masked field reduced to its
// logical value. Fields whose value does not complete the mask are cleared
// and reported as *FieldError wrapping ErrIncomplete; the clone is returned
// alongside the joined errors. Empty fields are left empty.
func (b *Binder[T]) Model(ctx context.Context, obj *T) (*T, error) {
	if obj == nil {
		return nil, nil
	}

	start := time.Now()
	var retErr error
	defer func() {
		emitModelComplete(ctx, b.typeName, time.Since(start), len(b.plans), retErr)
	}()

	clone := (*obj).Clone()

	if m, ok := any(&clone).(Modelable); ok {
		if err := m.Model(b.Masks()); err != nil {
			retErr = fmt.Errorf("model: %w", err)
			return nil, retErr
		}
		return &clone, nil
	}

	var errs []error
	b.each(&clone, func(plan fieldPlan, name string, value string) string {
		if value == "" {
			return ""
		}
		logical, ok := plan.mask.Value(plan.mask.Apply(value))
		if !ok {
			errs = append(errs, &FieldError{Err: ErrIncomplete, Field: name, Value: value})
			return ""
		}
		return logical
	})

	retErr = errors.Join(errs...)
	return &clone, retErr
}

// each rewrites every masked string reachable from obj with fn.
func (b *Binder[T]) each(obj *T, fn func(plan fieldPlan, name, value string) string) {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range b.plans {
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		// Handle slice of strings
		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if elem.CanSet() {
					elem.SetString(fn(plan, fmt.Sprintf("%s[%d]", plan.name, i), elem.String()))
				}
			}
			continue
		}

		// Handle map of strings
		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out := reflect.New(v.Type()).Elem()
				out.SetString(fn(plan, fmt.Sprintf("%s[%v]", plan.name, k.Interface()), v.String()))
				field.SetMapIndex(k, out)
			}
			continue
		}

		if !field.CanSet() {
			continue
		}
		field.SetString(fn(plan, plan.name, field.String()))
	}
}

// getField navigates a field path, dereferencing pointers as needed.
func getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
