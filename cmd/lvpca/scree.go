// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/lvpca/cmd/lvpca/ui"
	"github.com/katalvlaran/lvpca/internal/plotting"
	"github.com/spf13/cobra"
)

func screeCmd(a *app) *cobra.Command {
	var (
		modelPath, out, title string
		width, height         float64
	)
	cmd := &cobra.Command{
		Use:   "scree",
		Short: "Render a scree chart (png, svg or pdf) of a saved model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readModel(modelPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Scree.WidthCM
			}
			if !cmd.Flags().Changed("height") {
				height = a.cfg.Scree.HeightCM
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("scree size must be positive, got %gx%g cm", width, height)
			}

			p, err := plotting.Scree(title, m.ExplainedVariance, m.TotalVariance)
			if err != nil {
				return err
			}
			if err = plotting.Save(out, p, width, height); err != nil {
				return err
			}
			cmdLogger("scree").Info("chart written", "path", out)
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMsg("scree chart written to %s", out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Model file written by fit")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output image; format follows the extension")
	cmd.Flags().StringVar(&title, "title", "Explained variance", "Chart title")
	cmd.Flags().Float64Var(&width, "width", 0, "Width in cm (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm (default from config)")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
