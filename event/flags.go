package event

// SourceCategory classifies which part of an input primitive a cell or site
// event came from.
type SourceCategory uint8

const (
	SourceSinglePoint SourceCategory = iota
	SourceSegmentStart
	SourceSegmentEnd
	SourceSegment
)

func (c SourceCategory) String() string {
	switch c {
	case SourceSinglePoint:
		return "SinglePoint"
	case SourceSegmentStart:
		return "SegmentStart"
	case SourceSegmentEnd:
		return "SegmentEnd"
	case SourceSegment:
		return "Segment"
	default:
		panic("unsupported SourceCategory")
	}
}

// Flags is the ColorBits bitfield shared by site events, cells, and
// vertices: the lower 5 bits identify the source geometry, bit 5 marks a
// segment site whose logical direction has been flipped, and any higher
// bits are free for caller-assigned color.
type Flags uint32

const (
	SinglePoint     Flags = 0x0
	SegmentStart    Flags = 0x1
	SegmentEnd      Flags = 0x2
	SiteVertex      Flags = 0x4
	InitialSegment  Flags = 0x8
	ReverseSegment  Flags = 0x9
	BitMask         Flags = 0x1F
	GeometryShift         = 0x3
	BitsShift             = 0x5
	IsInverseBitMask Flags = 0x20
)

// Category extracts the SourceCategory encoded in the low bits of f.
func (f Flags) Category() SourceCategory {
	switch f & BitMask {
	case SinglePoint:
		return SourceSinglePoint
	case SegmentStart:
		return SourceSegmentStart
	case SegmentEnd:
		return SourceSegmentEnd
	case InitialSegment, ReverseSegment:
		return SourceSegment
	default:
		panic("unsupported site event flags")
	}
}

// IsInverse reports whether the IS_INVERSE bit is set.
func (f Flags) IsInverse() bool {
	return f&IsInverseBitMask != 0
}

// WithInverseToggled returns f with the IS_INVERSE bit flipped.
func (f Flags) WithInverseToggled() Flags {
	return f ^ IsInverseBitMask
}
