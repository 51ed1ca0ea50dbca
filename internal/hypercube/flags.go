package hypercube

// Flags describe storage characteristics of a cube for fast-path
// selection. They are advisory metadata: computed once at construction
// and never mutated, and nothing in the access paths depends on them
// for correctness.
type Flags struct {
	// Contiguous reports that flat order maps one-to-one onto a single
	// contiguous run of the underlying storage.
	Contiguous bool
	// Aligned reports that the backing allocation is naturally aligned.
	Aligned bool
	// OwnsData reports that the cube owns its storage (false for views).
	OwnsData bool
	// Writeable reports that Set paths are available.
	Writeable bool
}

// viewFlags derives a view's flags from its wrapped cube. Views never
// own data; contiguity survives only when preserve is true.
func viewFlags(wrapped Flags, preserve bool) Flags {
	return Flags{
		Contiguous: wrapped.Contiguous && preserve,
		Aligned:    wrapped.Aligned,
		OwnsData:   false,
		Writeable:  wrapped.Writeable,
	}
}
