// SPDX-License-Identifier: MIT
package pca_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpca/pca"
	"github.com/katalvlaran/lvpca/synth"
)

func BenchmarkFit(b *testing.B) {
	for _, solver := range []pca.Solver{pca.SolverJacobi, pca.SolverGonum} {
		for _, d := range []int{8, 32} {
			X, err := synth.LowRank(512, d, d/2, 1, synth.WithNoise(0.05))
			if err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("%s/d=%d", solver, d), func(b *testing.B) {
				e, _ := pca.New(d/4, pca.WithSolver(solver))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := e.Fit(X); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkTransform(b *testing.B) {
	X, err := synth.Gaussian(1024, 16, 3)
	if err != nil {
		b.Fatal(err)
	}
	e, _ := pca.New(4)
	if err = e.Fit(X); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = e.Transform(X); err != nil {
			b.Fatal(err)
		}
	}
}
