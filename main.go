package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ttpr0/go-mosp/cache"
	"github.com/ttpr0/go-mosp/graph"
	"github.com/ttpr0/go-mosp/mosp"
	"github.com/ttpr0/go-mosp/render"
	"golang.org/x/exp/slog"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var verbose bool
	var config_file string
	root := &cobra.Command{
		Use:          "mosp",
		Short:        "Multi-objective shortest paths and running route alternatives",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SetupLogging(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&config_file, "config", "c", "./config.yml", "config file (yaml or toml)")

	root.AddCommand(_NewServeCommand(&config_file))
	root.AddCommand(_NewBuildCommand(&config_file))
	root.AddCommand(_NewSolveCommand(&config_file))
	return root
}

//**********************************************************
// serve
//**********************************************************

func _NewServeCommand(config_file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Loads all profiles and serves the routing api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			config, err := ReadConfig(*config_file)
			if err != nil {
				return err
			}
			manager, err := NewProfileManager(ctx, config)
			if err != nil {
				return err
			}
			results, err := cache.New(ctx, config.Cache)
			if err != nil {
				return err
			}
			defer results.Close()

			server := &http.Server{
				Addr:    config.Server.Addr,
				Handler: NewRouter(NewService(manager, results, config.Cache.TTL), config.Server),
			}
			errs := make(chan error, 1)
			go func() {
				slog.Info("listening on " + config.Server.Addr)
				errs <- server.ListenAndServe()
			}()

			select {
			case err := <-errs:
				return err
			case <-ctx.Done():
			}
			slog.Info("shutting down")
			shutdown_ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdown_ctx); err != nil {
				return err
			}
			if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

//**********************************************************
// build
//**********************************************************

func _NewBuildCommand(config_file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Builds and stores the graphs of all profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := ReadConfig(*config_file)
			if err != nil {
				return err
			}
			config.Rebuild = true
			manager, err := NewProfileManager(cmd.Context(), config)
			if err != nil {
				return err
			}
			for _, name := range manager.ProfileNames() {
				g := manager.GetProfile(name).Value.GetGraph()
				fmt.Fprintf(cmd.OutOrStdout(), "%v: %v nodes, %v edges, %v objectives\n", name, g.NodeCount(), g.EdgeCount(), g.Dim())
			}
			return nil
		},
	}
}

//**********************************************************
// solve
//**********************************************************

type _SolveFlags struct {
	graph          string
	profile        string
	sources        []int64
	target         int64
	normalize      bool
	pruning        string
	max_iterations int
	dot            string
	svg            string
}

func _NewSolveCommand(config_file *string) *cobra.Command {
	flags := _SolveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Runs a one-to-all search and prints the Pareto frontiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return _RunSolve(cmd.Context(), cmd.OutOrStdout(), *config_file, flags)
		},
	}
	cmd.Flags().StringVar(&flags.graph, "graph", "", "json graph file")
	cmd.Flags().StringVar(&flags.profile, "profile", "", "profile of the config file")
	cmd.Flags().Int64SliceVar(&flags.sources, "source", nil, "source node ids")
	cmd.Flags().Int64Var(&flags.target, "target", 0, "only print the frontier of this node")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false, "order labels by normalized costs")
	cmd.Flags().StringVar(&flags.pruning, "pruning", "frontier", "pruning policy (frontier, latest)")
	cmd.Flags().IntVar(&flags.max_iterations, "max-iterations", 0, "iteration budget, 0 for none")
	cmd.Flags().StringVar(&flags.dot, "dot", "", "write the search graph of the first source as dot")
	cmd.Flags().StringVar(&flags.svg, "svg", "", "write the search graph of the first source as svg")
	cmd.MarkFlagsMutuallyExclusive("graph", "profile")
	cmd.MarkFlagRequired("source")
	return cmd
}

func _RunSolve(ctx context.Context, out io.Writer, config_file string, flags _SolveFlags) error {
	pruning, ok := mosp.ParsePruning(flags.pruning)
	if !ok {
		return &mosp.PruningError{Value: flags.pruning}
	}
	opts := []mosp.Option{
		mosp.WithPruning(pruning),
		mosp.WithMaxIterations(flags.max_iterations),
	}
	if flags.normalize {
		opts = append(opts, mosp.WithNormalization())
	}

	var g graph.IGraph
	switch {
	case flags.graph != "":
		loaded, err := graph.ReadGraphJSONFromFile(flags.graph)
		if err != nil {
			return err
		}
		g = loaded
	case flags.profile != "":
		config, err := ReadConfig(config_file)
		if err != nil {
			return err
		}
		manager, err := NewProfileManager(ctx, config)
		if err != nil {
			return err
		}
		profile := manager.GetProfile(flags.profile)
		if !profile.HasValue() {
			return fmt.Errorf("profile %v not found", flags.profile)
		}
		g = profile.Value.GetGraph()
	default:
		return errors.New("one of --graph or --profile is required")
	}

	sources := make([]int32, 0, len(flags.sources))
	for _, id := range flags.sources {
		node, ok := g.GetNodeIndex(id)
		if !ok {
			return fmt.Errorf("%w: %v", mosp.ErrSourceNotFound, id)
		}
		sources = append(sources, node)
	}
	target := int32(-1)
	if flags.target != 0 {
		node, ok := g.GetNodeIndex(flags.target)
		if !ok {
			return fmt.Errorf("target %v not found", flags.target)
		}
		target = node
	}

	var results []*mosp.Frontiers
	if len(sources) == 1 {
		frontiers, err := mosp.OneToAll(g, sources[0], g.Dim(), append(opts, mosp.WithContext(ctx))...)
		if err != nil && !errors.Is(err, mosp.ErrBudgetExceeded) {
			return err
		}
		if err != nil {
			slog.Warn(err.Error())
		}
		results = []*mosp.Frontiers{frontiers}
	} else {
		batch, err := mosp.OneToAllBatch(ctx, g, sources, g.Dim(), opts...)
		if err != nil {
			return err
		}
		results = batch
	}

	for _, frontiers := range results {
		if len(results) > 1 {
			fmt.Fprintf(out, "source %v\n", g.GetNodeID(frontiers.Source()))
		}
		_PrintFrontiers(out, g, frontiers, target)
	}
	return _WriteSearchGraph(ctx, g, results[0], flags)
}

// Prints one line per settled label.
func _PrintFrontiers(out io.Writer, g graph.IGraph, frontiers *mosp.Frontiers, target int32) {
	for node := int32(0); node < int32(g.NodeCount()); node++ {
		if target >= 0 && node != target {
			continue
		}
		for _, label := range frontiers.Get(node) {
			fmt.Fprintf(out, "node %v: %v path %v\n", g.GetNodeID(node), label.Cost, _NodeIDs(g, label.Path()))
		}
	}
}

func _WriteSearchGraph(ctx context.Context, g graph.IGraph, frontiers *mosp.Frontiers, flags _SolveFlags) error {
	if flags.dot == "" && flags.svg == "" {
		return nil
	}
	dot := render.ToDOT(g, frontiers, render.Options{Detailed: true})
	if flags.dot != "" {
		if err := os.WriteFile(flags.dot, []byte(dot), 0o644); err != nil {
			return err
		}
	}
	if flags.svg != "" {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flags.svg, svg, 0o644); err != nil {
			return err
		}
	}
	return nil
}
