package fpsio

import "github.com/vmihailenco/msgpack/v5"

// wireMatrix is the on-the-wire shape for a Matrix: shape plus the flat
// row-major payload, so msgpack doesn't need to know about Matrix's
// unexported fields.
type wireMatrix struct {
	P, D int
	Data []float32
}

// MarshalBinary encodes m as msgpack, for any caller that wants a compact
// binary round trip of a point cloud.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(wireMatrix{P: m.p, D: m.d, Data: m.data})
}

// UnmarshalBinary decodes msgpack produced by MarshalBinary into m,
// replacing its contents.
func (m *Matrix) UnmarshalBinary(b []byte) error {
	var w wireMatrix
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.P <= 0 || w.D <= 0 {
		return ErrInvalidDimensions
	}
	m.p, m.d, m.data = w.P, w.D, w.Data
	m.validateNaNInf = true
	return nil
}
