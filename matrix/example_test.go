// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvpca/matrix"
)

// ExampleCovariance shows the sample covariance of two perfectly correlated columns.
func ExampleCovariance() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 6},
	})
	cov, means, _ := matrix.Covariance(X)
	fmt.Println("means:", means)
	fmt.Print(cov)
	// Output:
	// means: [2 4]
	// [2, 4]
	// [4, 8]
}

// ExampleEigen decomposes a small symmetric matrix and prints sorted eigenvalues.
func ExampleEigen() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 2},
	})
	vals, _, err := matrix.Eigen(A, 1e-12, 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	sort.Float64s(vals)
	fmt.Printf("%.6f %.6f\n", vals[0], vals[1])
	// Output:
	// 1.000000 3.000000
}
