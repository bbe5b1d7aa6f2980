package points

import (
	"fmt"
	"math"
	"strings"
)

// maxPreviewRows bounds how many rows String renders before eliding the
// rest; point clouds routinely carry tens of thousands of rows and a full
// dump is rarely what a debugging session wants.
const maxPreviewRows = 8

// Dense is the (n×d) row-major point cloud threaded through every pipeline
// stage: n points, d feature dimensions, backed by one flat slice so a
// whole row is a contiguous, cache-friendly read.
type Dense struct {
	points int
	dim    int
	data   []float64 // length == points*dim, row i at data[i*dim:(i+1)*dim]
}

// denseErrorf attaches the failing accessor and coordinates to a Dense
// error so a caller can tell which of potentially many matrices misbehaved.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates a zero-filled n×d point cloud.
// Complexity: O(n*d) time and memory.
func NewDense(n, d int) (*Dense, error) {
	if n <= 0 || d <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{points: n, dim: d, data: make([]float64, n*d)}, nil
}

// WrapDense adopts an existing flat row-major slice as an n×d point cloud
// without copying it. This is how a producing stage hands its output to
// the next one by move: the caller must not mutate data through any other
// reference once WrapDense has returned a *Dense over it.
func WrapDense(n, d int, data []float64) (*Dense, error) {
	if n <= 0 || d <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != n*d {
		return nil, ErrLengthMismatch
	}
	return &Dense{points: n, dim: d, data: data}, nil
}

// Rows reports the number of points in the cloud.
func (m *Dense) Rows() int { return m.points }

// Cols reports the feature dimension of the cloud.
func (m *Dense) Cols() int { return m.dim }

// indexOf resolves (row, col) to a flat offset, or ErrIndexOutOfBounds if
// either coordinate falls outside the cloud; method names the calling
// accessor in that error.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.points || col < 0 || col >= m.dim {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.dim + col, nil
}

// At returns the value of feature col on point row.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set writes v into feature col of point row.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns point i's feature vector, sharing backing storage with the
// cloud rather than copying it. Distance kernels read through this
// directly to skip the per-element bounds check At/Set pay for.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.points {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	return m.data[i*m.dim : (i+1)*m.dim], nil
}

// Clone returns a point cloud with its own backing storage, equal in value
// to m but independent of any future mutation through m.
// Complexity: O(n*d) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{points: m.points, dim: m.dim, data: cp}
}

// Finite reports ErrNonFinite at the first NaN or ±Inf entry encountered,
// or nil if every value in the cloud is finite. This is the boundary check
// run on a point cloud before it enters the pipeline.
// Complexity: O(n*d).
func (m *Dense) Finite() error {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// String implements fmt.Stringer with a head-of-cloud preview: at most
// maxPreviewRows points are rendered, with the remainder collapsed into a
// single elision line, since a full O(n*d) dump is rarely useful once n
// grows past a few dozen points.
func (m *Dense) String() string {
	var b strings.Builder
	shown := m.points
	if shown > maxPreviewRows {
		shown = maxPreviewRows
	}
	for i := 0; i < shown; i++ {
		b.WriteByte('[')
		row := m.data[i*m.dim : (i+1)*m.dim]
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}
	if shown < m.points {
		fmt.Fprintf(&b, "... (%d more points)\n", m.points-shown)
	}
	return b.String()
}
