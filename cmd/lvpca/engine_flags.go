// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvpca/cmd/lvpca/ui"
	"github.com/katalvlaran/lvpca/config"
	"github.com/katalvlaran/lvpca/internal/dataset"
	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// nearZeroVariance flags retained eigenvalues below this fraction of the largest.
const nearZeroVariance = 1e-10

// engineFlags mirror the engine fields of config.Config; only flags set on the
// command line override the loaded config.
type engineFlags struct {
	components int
	solver     string
	meanPolicy string
	tolerance  float64
	maxIter    int
}

func (f *engineFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.components, "components", "k", 0, "Number of components to keep (default from config)")
	fs.StringVar(&f.solver, "solver", "", "Eigen-solver: jacobi or gonum")
	fs.StringVar(&f.meanPolicy, "mean-policy", "", "Transform centering: fit or batch")
	fs.Float64Var(&f.tolerance, "tolerance", 0, "Jacobi convergence tolerance, relative to the largest variance")
	fs.IntVar(&f.maxIter, "max-iter", 0, "Jacobi rotation cap (0 = automatic)")
}

// merge returns a copy of base with every changed flag applied and validated.
func (f *engineFlags) merge(fs *pflag.FlagSet, base *config.Config) (*config.Config, error) {
	cfg := *base
	if fs.Changed("components") {
		cfg.Components = f.components
	}
	if fs.Changed("solver") {
		cfg.Solver = f.solver
	}
	if fs.Changed("mean-policy") {
		cfg.MeanPolicy = f.meanPolicy
	}
	if fs.Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if fs.Changed("max-iter") {
		cfg.MaxIter = f.maxIter
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newEngine builds an unfitted engine from config plus command-line overrides.
func (f *engineFlags) newEngine(fs *pflag.FlagSet, base *config.Config) (*pca.Engine, error) {
	cfg, err := f.merge(fs, base)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return pca.New(cfg.Components, opts...)
}

func readModel(path string) (pca.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return pca.Model{}, err
	}
	defer f.Close()

	return pca.ReadModel(f)
}

func writeModel(path string, m pca.Model) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return pca.WriteModel(f, m)
}

// writeProjection writes Y as CSV to path, or to cmd's stdout when path is empty.
func writeProjection(cmd *cobra.Command, path string, Y matrix.Matrix) error {
	header := dataset.ComponentHeader(Y.Cols())
	if path == "" {
		return dataset.WriteCSV(cmd.OutOrStdout(), header, Y)
	}
	return dataset.WriteFile(path, header, Y)
}

func printVariance(w io.Writer, m pca.Model) {
	fmt.Fprint(w, ui.KeyValues("",
		ui.KV("samples", fmt.Sprint(m.NSamples)),
		ui.KV("features", fmt.Sprint(m.NFeatures)),
		ui.KV("solver", m.Solver),
		ui.KV("total variance", fmt.Sprintf("%.6g", m.TotalVariance)),
	))
	fmt.Fprintln(w, ui.Table(ui.VarianceHeaders, ui.VarianceRows(m.ExplainedVariance, m.TotalVariance)))

	top := m.ExplainedVariance[0]
	for j, v := range m.ExplainedVariance {
		if v <= nearZeroVariance*top {
			fmt.Fprintln(w, ui.WarnMsg("PC%d has near-zero variance; the data has rank below %d", j+1, m.NComponents))
		}
	}
}
