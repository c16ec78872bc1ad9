package recipe

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/pipeline"
	"github.com/kbukum/seqkit/validation"
)

// Step names one combinator and its arguments. Fields an op does not use
// are ignored.
type Step struct {
	Op         string `yaml:"op" mapstructure:"op" validate:"required,oneof=exclude move pad distinct without_equal between take batch_sum window_sum rank sample"`
	Start      int    `yaml:"start" mapstructure:"start" validate:"gte=0"`
	Count      int    `yaml:"count" mapstructure:"count" validate:"gte=0"`
	From       int    `yaml:"from" mapstructure:"from" validate:"gte=0"`
	To         int    `yaml:"to" mapstructure:"to" validate:"gte=0"`
	Size       int    `yaml:"size" mapstructure:"size" validate:"gte=0"`
	Value      int64  `yaml:"value" mapstructure:"value"`
	Max        int64  `yaml:"max" mapstructure:"max"`
	Descending bool   `yaml:"descending" mapstructure:"descending"`
	// Seed makes sample reproducible. Zero draws a random seed.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

// Recipe is an ordered list of steps applied to a sequence of int64.
type Recipe struct {
	Name  string `yaml:"name" mapstructure:"name"`
	Steps []Step `yaml:"steps" mapstructure:"steps" validate:"dive"`
}

// Stage transforms a pipeline. Compile returns the composition of every step.
type Stage func(*pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error)

// Compile validates r and composes its steps into a single Stage.
//
// Struct tags catch unknown ops and negative numbers. The composed stage is
// then applied once to an empty pipeline so argument errors that depend on
// the op, such as a zero batch size, are reported here rather than on first
// use. Errors carry the offending step index in their "step" detail.
func Compile(r Recipe, log *logger.Logger) (Stage, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := validation.Validate(r); err != nil {
		return nil, err
	}

	stages := make([]Stage, len(r.Steps))
	for i, s := range r.Steps {
		stage, err := compileStep(s)
		if err != nil {
			return nil, atStep(err, i, s.Op)
		}
		stages[i] = stage
		log.Debug("step compiled", logger.Fields(logger.FieldStep, i, logger.FieldOperation, s.Op))
	}

	composed := func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
		for i, stage := range stages {
			next, err := stage(p)
			if err != nil {
				return nil, atStep(err, i, r.Steps[i].Op)
			}
			p = next
		}
		return p, nil
	}

	if _, err := composed(pipeline.FromSlice[int64](nil)); err != nil {
		return nil, err
	}
	log.Info("recipe compiled", logger.Fields("recipe", r.Name, "steps", len(stages)))
	return composed, nil
}

func atStep(err error, index int, op string) error {
	appErr := errors.Wrap(err)
	return appErr.WithDetail("step", index).WithDetail(logger.FieldOperation, op)
}

func compileStep(s Step) (Stage, error) {
	switch s.Op {
	case "exclude":
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			return pipeline.Exclude(p, s.Start, s.Count)
		}, nil
	case "move":
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			return pipeline.Move(p, s.From, s.Count, s.To)
		}, nil
	case "pad":
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			return pipeline.PadWith(p, s.Count, s.Value)
		}, nil
	case "distinct":
		return infallible(func(p *pipeline.Pipeline[int64]) *pipeline.Pipeline[int64] {
			return pipeline.DistinctBy(p, identity)
		}), nil
	case "without_equal":
		return infallible(func(p *pipeline.Pipeline[int64]) *pipeline.Pipeline[int64] {
			return pipeline.Diff(p, s.Value)
		}), nil
	case "between":
		if s.Max < s.Value {
			return nil, errors.InvalidArgument("max", fmt.Sprintf("must be at least value (%d)", s.Value))
		}
		return infallible(func(p *pipeline.Pipeline[int64]) *pipeline.Pipeline[int64] {
			return pipeline.Between(p, s.Value, s.Max)
		}), nil
	case "take":
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			return pipeline.Take(p, s.Count)
		}, nil
	case "batch_sum":
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			batches, err := pipeline.Batch(p, s.Size)
			if err != nil {
				return nil, err
			}
			return sums(batches), nil
		}, nil
	case "window_sum":
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			windows, err := pipeline.Window(p, s.Size)
			if err != nil {
				return nil, err
			}
			return sums(windows), nil
		}, nil
	case "rank":
		rank := pipeline.Rank[int64, int64]
		if s.Descending {
			rank = pipeline.RankDescending[int64, int64]
		}
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			ranked, err := rank(p, identity, s.Count)
			if err != nil {
				return nil, err
			}
			return pipeline.Map(ranked, func(_ context.Context, e pipeline.RankElement[int64, int64]) (int64, error) {
				return e.Source, nil
			}), nil
		}, nil
	case "sample":
		return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
			return pipeline.Rand(p, s.Count, sampler(s.Seed))
		}, nil
	default:
		return nil, errors.InvalidArgument("op", fmt.Sprintf("unknown op %q", s.Op))
	}
}

func identity(v int64) int64 { return v }

func infallible(fn func(*pipeline.Pipeline[int64]) *pipeline.Pipeline[int64]) Stage {
	return func(p *pipeline.Pipeline[int64]) (*pipeline.Pipeline[int64], error) {
		return fn(p), nil
	}
}

func sums(p *pipeline.Pipeline[[]int64]) *pipeline.Pipeline[int64] {
	return pipeline.Map(p, func(ctx context.Context, group []int64) (int64, error) {
		return pipeline.Sum(ctx, pipeline.FromSlice(group))
	})
}

// sampler returns a fresh source per stage application. A zero seed leaves
// the choice to pipeline.Rand.
func sampler(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
