package types

// SignedInteger is the narrower numeric type set used for input coordinates
// (spec calls this I): site events, builder ingestion, and the beach-line
// keys derived from them are all integer-only, since the sweepline's exact
// predicates only make sense starting from exact input. Diagram output
// coordinates, by contrast, are float64 (Build returns a dcel.DCEL[float64]).
type SignedInteger interface {
	int | int32 | int64
}
