// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes m as nested rows, e.g. [[1,2],[3,4]].
// Non-finite cells fail encoding (encoding/json rejects NaN/Inf).
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRows())
}

// UnmarshalJSON replaces m with the decoded nested rows. The input must be
// rectangular and non-empty (ErrRaggedShape otherwise). The numeric policy of
// a zero-value receiver is the package default.
func (m *Dense) UnmarshalJSON(b []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("Dense.UnmarshalJSON: %w", err)
	}
	d, err := NewFromRows(rows)
	if err != nil {
		return fmt.Errorf("Dense.UnmarshalJSON: %w", err)
	}
	*m = *d

	return nil
}
