// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpca/internal/dataset"
	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/synth"
	"github.com/spf13/cobra"
)

func synthCmd(_ *app) *cobra.Command {
	var (
		rows, cols, rank int
		seed             int64
		sigma, noise     float64
		shift            []float64
		out              string
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a deterministic synthetic CSV dataset",
		Long: "Generate i.i.d. Gaussian samples, or a low-rank factor model plus noise " +
			"when --rank is set. The same seed always yields the same data.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Option constructors panic on these; report them as flag errors instead.
			if !finiteNonNeg(sigma) || !finiteNonNeg(noise) {
				return fmt.Errorf("--sigma and --noise must be finite and >= 0, got %g and %g", sigma, noise)
			}
			for j, v := range shift {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("--shift entry %d is not finite", j)
				}
			}
			opts := []synth.Option{synth.WithSigma(sigma), synth.WithNoise(noise)}
			if len(shift) > 0 {
				opts = append(opts, synth.WithShift(shift))
			}

			var (
				X   *matrix.Dense
				err error
			)
			if rank > 0 {
				X, err = synth.LowRank(rows, cols, rank, seed, opts...)
			} else {
				X, err = synth.Gaussian(rows, cols, seed, opts...)
			}
			if err != nil {
				return err
			}
			cmdLogger("synth").Debug("generated", "rows", rows, "cols", cols, "rank", rank, "seed", seed)

			if out == "" {
				return dataset.WriteCSV(cmd.OutOrStdout(), nil, X)
			}
			return dataset.WriteFile(out, nil, X)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 100, "Number of samples")
	cmd.Flags().IntVar(&cols, "cols", 4, "Number of features")
	cmd.Flags().IntVar(&rank, "rank", 0, "Latent rank (0 = full-rank Gaussian)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = fixed default seed)")
	cmd.Flags().Float64Var(&sigma, "sigma", synth.DefaultSigma, "Standard deviation of Gaussian samples or latent factors")
	cmd.Flags().Float64Var(&noise, "noise", synth.DefaultNoise, "Standard deviation of additive noise (low-rank only)")
	cmd.Flags().Float64SliceVar(&shift, "shift", nil, "Per-feature offset added to every sample")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write CSV here (default stdout)")
	return cmd
}

func finiteNonNeg(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
