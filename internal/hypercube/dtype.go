package hypercube

// Elem is a constraint for supported cube element types.
// It uses Go generics so a single implementation covers every element
// type with compile-time type safety.
type Elem interface {
	~bool | ~int32 | ~int64 | ~float32 | ~float64
}

// Number is the subset of Elem that supports arithmetic.
type Number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// DataType represents runtime type information for cubes.
type DataType int

// Supported element types.
const (
	Bool DataType = iota
	Int32
	Int64
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool:
		return 1
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// dataTypeOf infers DataType from a generic type T.
func dataTypeOf[T Elem]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return Bool
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
