package fpsio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// LoadCompressedMatrix reads a zstd-compressed msgpack-encoded Matrix from
// path, as written by SaveCompressedMatrix. It exists for point clouds too
// large to keep on disk uncompressed.
func LoadCompressedMatrix(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fpsio: LoadCompressedMatrix: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("fpsio: LoadCompressedMatrix: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("fpsio: LoadCompressedMatrix: %w", err)
	}

	m := &Matrix{}
	if err := m.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("fpsio: LoadCompressedMatrix: %w", err)
	}
	return m, nil
}

// SaveCompressedMatrix writes m to path as zstd-compressed msgpack, the
// inverse of LoadCompressedMatrix.
func SaveCompressedMatrix(path string, m *Matrix) error {
	raw, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("fpsio: SaveCompressedMatrix: %w", err)
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return fmt.Errorf("fpsio: SaveCompressedMatrix: %w", err)
	}
	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		return fmt.Errorf("fpsio: SaveCompressedMatrix: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("fpsio: SaveCompressedMatrix: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("fpsio: SaveCompressedMatrix: %w", err)
	}
	return nil
}
