// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/lvpca/cmd/lvpca/ui"
	"github.com/katalvlaran/lvpca/internal/dataset"
	"github.com/spf13/cobra"
)

func fitCmd(a *app) *cobra.Command {
	var (
		ef         engineFlags
		input, out string
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a PCA model to a CSV file and report explained variance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := cmdLogger("fit")

			tab, err := dataset.ReadFile(input)
			if err != nil {
				return err
			}
			eng, err := ef.newEngine(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}
			if err = eng.Fit(tab.Data); err != nil {
				return err
			}
			m, err := eng.Model()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printVariance(w, m)
			if out == "" {
				return nil
			}
			if err = writeModel(out, m); err != nil {
				return fmt.Errorf("write model: %w", err)
			}
			log.Info("model written", "path", out, "components", m.NComponents)
			fmt.Fprintln(w, ui.SuccessMsg("model written to %s", out))
			return nil
		},
	}
	ef.register(cmd.Flags())
	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file with one sample per row")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the fitted model (YAML) to this path")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func fitTransformCmd(a *app) *cobra.Command {
	var (
		ef                   engineFlags
		input, out, modelOut string
	)
	cmd := &cobra.Command{
		Use:   "fit-transform",
		Short: "Fit a PCA model and project the same CSV file onto it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := cmdLogger("fit-transform")

			tab, err := dataset.ReadFile(input)
			if err != nil {
				return err
			}
			eng, err := ef.newEngine(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}
			Y, err := eng.FitTransform(tab.Data)
			if err != nil {
				return err
			}
			if modelOut != "" {
				m, err := eng.Model()
				if err != nil {
					return err
				}
				if err = writeModel(modelOut, m); err != nil {
					return fmt.Errorf("write model: %w", err)
				}
				log.Info("model written", "path", modelOut)
			}
			log.Debug("projected", "rows", Y.Rows(), "components", Y.Cols())
			return writeProjection(cmd, out, Y)
		},
	}
	ef.register(cmd.Flags())
	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file with one sample per row")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write projected CSV here (default stdout)")
	cmd.Flags().StringVar(&modelOut, "model-out", "", "Also write the fitted model (YAML) to this path")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
