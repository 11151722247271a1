package fpsample_test

import (
	"fmt"

	"github.com/leonardodalinky/fpsample"
	"github.com/leonardodalinky/fpsample/fpsio"
)

// Example demonstrates the naive driver sampling the four corners of a unit
// square down to two points, anchored at the origin.
func Example() {
	m, err := fpsio.NewMatrixFromRows([][]float32{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	})
	if err != nil {
		panic(err)
	}

	indices, err := fpsample.Sample(m, 2, fpsample.WithStart(0))
	if err != nil {
		panic(err)
	}
	fmt.Println(indices)
	// Output: [0 3]
}

// Example_bucketKDTree shows that the Bucket-FPS KD-Tree engine agrees
// exactly with the naive driver on the same input.
func Example_bucketKDTree() {
	m, err := fpsio.NewMatrixFromRows([][]float32{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	})
	if err != nil {
		panic(err)
	}

	indices, err := fpsample.SampleBucketKDTree(m, 4, fpsample.WithStart(0))
	if err != nil {
		panic(err)
	}
	fmt.Println(indices)
	// Output: [0 3 1 2]
}
