// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/sigma/builder"
	"github.com/katalvlaran/sigma/structure"
)

// ErrGraphSpec indicates a malformed --graph value.
var ErrGraphSpec = errors.New("cli: invalid graph spec")

// maxConnectAttempts bounds Erdős–Rényi resampling until the sample is connected.
const maxConnectAttempts = 1000

// graphKinds documents the accepted spec strings, in help order.
var graphKinds = []string{
	"karate", "cycle:N", "path:N", "complete:N", "star:N", "wheel:N",
	"bipartite:A:B", "grid:RxC", "er:N:P", "ba:N:M", "regular:N:D",
}

// buildStructure turns a spec such as "ba:50:1" into a connected structure.
// Stochastic families draw from a source seeded with seed; "er" resamples
// until the graph is connected.
func buildStructure(spec string, seed int64) (*structure.Structure, error) {
	kind, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	parts := []string{}
	if args != "" {
		parts = strings.Split(args, ":")
	}
	rng := rand.New(rand.NewSource(seed))
	opts := []builder.BuilderOption{builder.WithRand(rng)}

	var ctor builder.Constructor
	switch kind {
	case "karate":
		if len(parts) != 0 {
			return nil, specErrorf(spec, "karate takes no arguments")
		}
		ctor = builder.Karate()
	case "cycle", "path", "complete", "star", "wheel":
		n, err := intArgs(spec, parts, 1)
		if err != nil {
			return nil, err
		}
		ctor = map[string]func(int) builder.Constructor{
			"cycle": builder.Cycle, "path": builder.Path, "complete": builder.Complete,
			"star": builder.Star, "wheel": builder.Wheel,
		}[kind](n[0])
	case "bipartite":
		n, err := intArgs(spec, parts, 2)
		if err != nil {
			return nil, err
		}
		ctor = builder.CompleteBipartite(n[0], n[1])
	case "grid":
		if len(parts) != 1 {
			return nil, specErrorf(spec, "want grid:RxC")
		}
		r, c, ok := strings.Cut(parts[0], "x")
		if !ok {
			return nil, specErrorf(spec, "want grid:RxC")
		}
		n, err := intArgs(spec, []string{r, c}, 2)
		if err != nil {
			return nil, err
		}
		ctor = builder.Grid(n[0], n[1])
	case "ba":
		n, err := intArgs(spec, parts, 2)
		if err != nil {
			return nil, err
		}
		ctor = builder.BarabasiAlbert(n[0], n[1])
	case "regular":
		n, err := intArgs(spec, parts, 2)
		if err != nil {
			return nil, err
		}
		ctor = builder.RandomRegular(n[0], n[1])
	case "er":
		if len(parts) != 2 {
			return nil, specErrorf(spec, "want er:N:P")
		}
		n, err := intArgs(spec, parts[:1], 1)
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, specErrorf(spec, "probability %q: %v", parts[1], err)
		}
		return connectedSample(builder.RandomSparse(n[0], p), opts)
	default:
		return nil, specErrorf(spec, "unknown family %q (want one of %s)", kind, strings.Join(graphKinds, ", "))
	}

	g, err := builder.BuildGraph(opts, ctor)
	if err != nil {
		return nil, err
	}
	s, err := structure.FromGraph(g)
	if err != nil {
		return nil, err
	}
	if err = s.RequireNoIsolated(); err != nil {
		return nil, err
	}

	return s, nil
}

// connectedSample rebuilds ctor until the sample is connected. All attempts
// share one random source, so the accepted sample depends only on the seed.
func connectedSample(ctor builder.Constructor, opts []builder.BuilderOption) (*structure.Structure, error) {
	for attempt := 0; attempt < maxConnectAttempts; attempt++ {
		g, err := builder.BuildGraph(opts, ctor)
		if err != nil {
			return nil, err
		}
		s, err := structure.FromGraph(g)
		if err != nil {
			return nil, err
		}
		if s.Connected() {
			return s, nil
		}
	}

	return nil, fmt.Errorf("no connected sample after %d attempts: %w", maxConnectAttempts, builder.ErrConstructFailed)
}

func intArgs(spec string, parts []string, want int) ([]int, error) {
	if len(parts) != want {
		return nil, specErrorf(spec, "want %d integer argument(s), got %d", want, len(parts))
	}
	out := make([]int, want)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, specErrorf(spec, "argument %q is not an integer", p)
		}
		out[i] = v
	}

	return out, nil
}

func specErrorf(spec, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrGraphSpec, spec, fmt.Sprintf(format, args...))
}
