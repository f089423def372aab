package inputmask

// Override interfaces allow types to bypass reflection-based masking.
// When a type implements one of these interfaces, the Binder calls the
// interface method instead of walking tagged fields.
//
// The masks map holds every mask declared by the type's tags, keyed by
// field path (for example "Phone" or "Address.Zip").

// Viewable bypasses reflection for Binder.View.
type Viewable interface {
	// View renders the receiver's masked fields for display.
	// The receiver is a clone, so mutations are safe.
	View(masks map[string]*Mask) error
}

// Modelable bypasses reflection for Binder.Model.
type Modelable interface {
	// Model reduces the receiver's masked fields to logical values.
	// The receiver is a clone, so mutations are safe.
	Model(masks map[string]*Mask) error
}
