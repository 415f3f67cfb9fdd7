package models

// ResultKind discriminates the shapes a search result can take.
type ResultKind int

const (
	// ResultEmpty means no exact hit was found.
	ResultEmpty ResultKind = iota
	// ResultFirstHit carries the first exact hit of a short-circuited scan.
	ResultFirstHit
	// ResultBucketed carries the equal and, optionally, similar buckets.
	ResultBucketed
)

func (k ResultKind) String() string {
	switch k {
	case ResultFirstHit:
		return "first_hit"
	case ResultBucketed:
		return "bucketed"
	}
	return "empty"
}

// MarshalText lets the kind serialize by name.
func (k ResultKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Hit is a matched cell.
type Hit struct {
	// SheetName is set when the hit comes from a multi-sheet search.
	SheetName string `json:"sheet_name,omitempty"`
	// Ref is the cell reference, e.g. "B4".
	Ref        string     `json:"ref"`
	Coordinate Coordinate `json:"coordinate"`
	Value      Value      `json:"value"`
}

// NewHit builds a hit for a cell.
func NewHit(c Cell) Hit {
	return Hit{Ref: c.Coordinate.String(), Coordinate: c.Coordinate, Value: c.Value}
}

// Result is the outcome of a search.
type Result struct {
	Kind ResultKind `json:"kind"`
	// First is set for ResultFirstHit.
	First *Hit `json:"first,omitempty"`
	// Equal holds exact hits in discovery order.
	Equal []Hit `json:"equal,omitempty"`
	// Similar holds approximate hits in discovery order.
	Similar []Hit `json:"similar,omitempty"`
}

// Found reports whether the result carries any hit.
func (r Result) Found() bool {
	return r.Kind != ResultEmpty
}

// Hits returns every hit, the first hit or the equal bucket followed by
// the similar bucket.
func (r Result) Hits() []Hit {
	switch r.Kind {
	case ResultFirstHit:
		return []Hit{*r.First}
	case ResultBucketed:
		hits := make([]Hit, 0, len(r.Equal)+len(r.Similar))
		hits = append(hits, r.Equal...)
		return append(hits, r.Similar...)
	}
	return nil
}
