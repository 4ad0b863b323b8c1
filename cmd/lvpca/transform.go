// SPDX-License-Identifier: MIT
package main

import (
	"github.com/katalvlaran/lvpca/internal/dataset"
	"github.com/katalvlaran/lvpca/pca"
	"github.com/spf13/cobra"
)

func transformCmd(_ *app) *cobra.Command {
	var (
		modelPath, input, out, meanPolicy string
	)
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Project a CSV file onto a saved model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := cmdLogger("transform")

			m, err := readModel(modelPath)
			if err != nil {
				return err
			}
			var opts []pca.Option
			if cmd.Flags().Changed("mean-policy") {
				p, err := pca.ParseMeanPolicy(meanPolicy)
				if err != nil {
					return err
				}
				opts = append(opts, pca.WithMeanPolicy(p))
			}
			eng, err := pca.FromModel(m, opts...)
			if err != nil {
				return err
			}
			tab, err := dataset.ReadFile(input)
			if err != nil {
				return err
			}
			Y, err := eng.Transform(tab.Data)
			if err != nil {
				return err
			}
			log.Debug("projected", "rows", Y.Rows(), "mean_policy", eng.MeanPolicy().String())
			return writeProjection(cmd, out, Y)
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Model file written by fit")
	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file with one sample per row")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write projected CSV here (default stdout)")
	cmd.Flags().StringVar(&meanPolicy, "mean-policy", "", "Override the model's centering policy: fit or batch")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
