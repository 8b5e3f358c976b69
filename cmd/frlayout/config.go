package main

import "github.com/go-playground/validator/v10"

// runConfig is resolved from CLI flags and validated before anything is
// constructed: failing fast here means the engine, the graph, and the
// output directory are never touched on bad input.
type runConfig struct {
	Nodes            int     `validate:"required,min=1"`
	Probability      float64 `validate:"gte=0,lte=1"`
	Width            float64 `validate:"gt=0"`
	Height           float64 `validate:"gt=0"`
	ScalingConstant  float64 `validate:"gt=0"`
	Steps            int     `validate:"required,min=1"`
	GraphSeed        int64
	LayoutSeed       int64
	Strategy         string  `validate:"oneof=bruteforce barneshut"`
	Theta            float64 `validate:"gte=0"`
	OutDir           string  `validate:"required"`
	WarnDisconnected bool
}

var validate = validator.New()

func (c runConfig) Validate() error {
	return validate.Struct(c)
}
