package alignment

import (
	"encoding/json"
	"fmt"

	"github.com/h2gb/h2core/errs"
)

// alignmentWire is Alignment's exported tagged form. N is omitted for
// KindNone, which has no modulus.
type alignmentWire struct {
	Kind string `json:"kind"`
	N    int    `json:"n,omitempty"`
}

// MarshalJSON renders the alignment as a tagged, self-describing object.
func (a Alignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(alignmentWire{Kind: a.kind.String(), N: a.n})
}

// UnmarshalJSON reconstructs an Alignment from its tagged form.
func (a *Alignment) UnmarshalJSON(data []byte) error {
	var w alignmentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	kind, err := ParseKind(w.Kind)
	if err != nil {
		return err
	}

	*a = Alignment{kind: kind, n: w.N}

	return nil
}
