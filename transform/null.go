package transform

// Null is the identity transform: it always succeeds and returns its
// input unchanged in both directions.
type Null struct{}

func (Null) Transform(data []byte) ([]byte, error)   { return data, nil }
func (Null) Untransform(data []byte) ([]byte, error) { return data, nil }
func (Null) CanTransform(_ []byte) bool              { return true }
func (Null) IsTwoWay() bool                          { return true }
