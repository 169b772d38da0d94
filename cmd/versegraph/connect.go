// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/versegraph/builder"
	"github.com/katalvlaran/versegraph/dataset"
)

func newConnectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Build the poem graph from tags and positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd)
		},
	}

	f := cmd.Flags()
	f.Int("kmin", builder.DefaultKMin, "minimum neighbors per poem")
	f.Int("kmax", builder.DefaultKMax, "maximum neighbors per poem")
	f.Int("nearest", builder.DefaultNearest, "nearest neighbors linked per poem")
	f.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	f.String("out", "", "connections JSON (default data/connections.json)")
	_ = a.v.BindPFlag("graph.kmin", f.Lookup("kmin"))
	_ = a.v.BindPFlag("graph.kmax", f.Lookup("kmax"))
	_ = a.v.BindPFlag("graph.nearest", f.Lookup("nearest"))
	_ = a.v.BindPFlag("graph.workers", f.Lookup("workers"))
	_ = a.v.BindPFlag("data.connections", f.Lookup("out"))

	return cmd
}

func (a *app) connect(cmd *cobra.Command) error {
	corpus, err := dataset.LoadCorpus(a.cfg.Data.Corpus)
	if err != nil {
		return err
	}
	positions, err := dataset.ReadPositions(a.cfg.Data.Positions)
	if err != nil {
		return err
	}

	g := a.cfg.Graph
	opts := []builder.BuilderOption{
		builder.WithConstraints(g.KMin, g.KMax),
		builder.WithNearest(g.Nearest),
		builder.WithLogger(a.log.Zap()),
	}
	if g.Workers > 0 {
		opts = append(opts, builder.WithWorkers(g.Workers))
	}

	res, err := builder.Build(corpus.IDs(), positions, corpus.Themes(), corpus.Motifs(), opts...)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err = dataset.WriteConnections(a.cfg.Data.Connections, res.Graph); err != nil {
		return err
	}

	r := res.Report
	a.log.Info("connections written",
		"path", a.cfg.Data.Connections,
		"poems", len(res.Graph),
		"edges", len(res.Graph.Edges()),
		"one_way", len(res.Graph.Asymmetric()),
		"under_floor", len(r.UnderFloor),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%d poems, %d edges, %d one-way, %d below kmin\n",
		len(res.Graph), len(res.Graph.Edges()), len(res.Graph.Asymmetric()), len(r.UnderFloor))

	return nil
}
