package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tactic-framework/blast/pkg/blast"
	"github.com/tactic-framework/blast/pkg/blast/metrics"
	"github.com/tactic-framework/blast/pkg/prop"
)

const (
	exitNotProved   = 1
	exitUsage       = 2
	exitInterrupted = 130
)

// problem is the YAML problem-file schema.
type problem struct {
	Hypotheses []string `json:"hypotheses,omitempty"`
	Goal       string   `json:"goal"`
	MaxDepth   int      `json:"maxDepth,omitempty"`
}

type options struct {
	maxDepth    int
	classical   bool
	trace       bool
	showFailure bool
	stats       bool
}

func main() {
	o := options{}
	cmd := &cobra.Command{
		Use:           "blast <problem-file>",
		Short:         "Searches for a proof of the goal described by a problem file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args[0])
		},
	}
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 0, "maximum proof depth (0 uses the problem file's value or the engine default)")
	cmd.Flags().BoolVar(&o.classical, "classical", false, "allow SAT-validated classical steps")
	cmd.Flags().BoolVar(&o.trace, "trace", false, "log search transitions to stderr")
	cmd.Flags().BoolVar(&o.showFailure, "show-failure", false, "display the final goal state when no proof is found")
	cmd.Flags().BoolVar(&o.stats, "stats", false, "print search counters after the run")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		switch {
		case blast.IsExhausted(err):
			os.Exit(exitNotProved)
		case errors.Is(err, blast.ErrInterrupted):
			os.Exit(exitInterrupted)
		}
		os.Exit(exitUsage)
	}
}

func run(o options, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading problem file %q", path)
	}
	var prob problem
	if err := yaml.Unmarshal(data, &prob); err != nil {
		return errors.Wrapf(err, "parsing problem file %q", path)
	}
	if prob.Goal == "" {
		return errors.Errorf("problem file %q has no goal", path)
	}

	goal, err := prop.Parse(prob.Goal)
	if err != nil {
		return errors.Wrap(err, "parsing goal")
	}
	hypotheses := make([]*prop.Formula, 0, len(prob.Hypotheses))
	for i, h := range prob.Hypotheses {
		f, err := prop.Parse(h)
		if err != nil {
			return errors.Wrapf(err, "parsing hypothesis %d", i)
		}
		hypotheses = append(hypotheses, f)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if o.trace {
		log.SetLevel(logrus.DebugLevel)
	}

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	maxDepth := prob.MaxDepth
	if o.maxDepth > 0 {
		maxDepth = o.maxDepth
	}
	prover := prop.Prover{
		MaxDepth:    maxDepth,
		Classical:   o.classical,
		ShowFailure: o.showFailure,
		Logger:      log,
		Stats:       metrics.Recorder{},
	}
	if o.trace {
		prover.Tracer = blast.LoggingTracer{Writer: os.Stderr}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	proof, err := prover.Prove(ctx, hypotheses, goal)
	if o.stats {
		defer printStats(registry)
	}
	if err != nil {
		return err
	}

	fmt.Printf("proved: %s\n", goal)
	proof.Render(os.Stdout)
	return nil
}

// printStats dumps the gathered counters in a compact text form.
func printStats(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gathering metrics: %s\n", err)
		return
	}
	for _, family := range families {
		for _, m := range family.Metric {
			name := family.GetName()
			for _, label := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", label.GetName(), label.GetValue())
			}
			switch {
			case m.Counter != nil:
				fmt.Fprintf(os.Stderr, "%s %v\n", name, m.Counter.GetValue())
			case m.Histogram != nil:
				fmt.Fprintf(os.Stderr, "%s count=%d sum=%v\n", name, m.Histogram.GetSampleCount(), m.Histogram.GetSampleSum())
			}
		}
	}
}
