package result

// MisuseError is the panic payload raised by the fail-fast accessors when
// they are called on the wrong variant. It signals a logic defect at the
// call site, never a recoverable domain failure, and is deliberately a
// distinct type from any E so tests can tell the two channels apart.
type MisuseError struct {
	Op      string // accessor that was called
	Variant string // variant it was called on
}

func (e *MisuseError) Error() string {
	return "result: " + e.Op + " called on a " + e.Variant + " result"
}
