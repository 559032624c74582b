package rectpack

// ErrorKind enumerates the reasons an instance can be refused.
type ErrorKind int

const (
	ErrBinSide ErrorKind = iota
	ErrDimRange
	ErrRectangle
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBinSide:
		return "invalid_bin_side"
	case ErrDimRange:
		return "invalid_dim_range"
	case ErrRectangle:
		return "invalid_rectangle"
	default:
		return "invalid_instance"
	}
}

// InstanceError is the structured refusal for an invalid instance: L<1,
// min>max, or a rectangle larger than the bin in either dimension.
// Algorithms never surface it once an Instance has been constructed
// successfully; only NewInstance returns it.
type InstanceError struct {
	Kind    ErrorKind
	Message string
}

func (e *InstanceError) Error() string {
	return e.Kind.String() + ": " + e.Message
}
