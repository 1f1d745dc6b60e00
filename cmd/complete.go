package cmd

import (
	"github.com/etnz/ironring/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.Topics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"run": {
				Flags: map[string]complete.Predictor{"skip-intro": predict.Nothing},
			},
			"check": {
				Flags: map[string]complete.Predictor{"json": predict.Nothing},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set(append(topics, "readme", "*")),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"data":   predict.Dirs("*"),
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
	}
}
