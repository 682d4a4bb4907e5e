// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"log"
	"slices"

	"github.com/ik5/soundfx"
	"github.com/ik5/soundfx/sound"
)

// options carries the parsed flag values of one command.
type options struct {
	weight  *float64
	conform *bool

	echoes *int
	delay  *float64
	scale  *float64
}

type command struct {
	summary string
	inputs  int
	flags   func(fs *flag.FlagSet) options
	apply   func(in []sound.Sound, opts options) (sound.Sound, error)
}

func noFlags(*flag.FlagSet) options { return options{} }

func single(effect func(sound.Sound) sound.Sound) func([]sound.Sound, options) (sound.Sound, error) {
	return func(in []sound.Sound, _ options) (sound.Sound, error) {
		return effect(in[0]), nil
	}
}

var commands = map[string]command{
	"reverse": {
		summary: "play the input backwards",
		inputs:  1,
		flags:   noFlags,
		apply:   single(sound.Reverse),
	},
	"pan": {
		summary: "sweep the input from left to right",
		inputs:  1,
		flags:   noFlags,
		apply:   single(sound.Pan),
	},
	"vocals": {
		summary: "remove center-panned vocals",
		inputs:  1,
		flags:   noFlags,
		apply:   single(sound.RemoveVocals),
	},
	"mix": {
		summary: "cross-fade two inputs",
		inputs:  2,
		flags: func(fs *flag.FlagSet) options {
			return options{
				weight:  fs.Float64("p", 0.5, "Weight of the first input (0..1)"),
				conform: fs.Bool("conform", false, "Resample the second input to the rate of the first"),
			}
		},
		apply: func(in []sound.Sound, opts options) (sound.Sound, error) {
			if *opts.conform {
				return soundfx.MixConformed(in[0], in[1], *opts.weight)
			}
			return sound.Mix(in[0], in[1], *opts.weight)
		},
	},
	"echo": {
		summary: "add decaying echoes",
		inputs:  1,
		flags: func(fs *flag.FlagSet) options {
			return options{
				echoes: fs.Int("n", 3, "Number of echoes"),
				delay:  fs.Float64("delay", 0.2, "Seconds between echoes"),
				scale:  fs.Float64("scale", 0.6, "Attenuation applied per echo"),
			}
		},
		apply: func(in []sound.Sound, opts options) (sound.Sound, error) {
			return sound.Echo(in[0], *opts.echoes, *opts.delay, *opts.scale)
		},
	},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// job is one command invocation resolved to file paths.
type job struct {
	inputs  []string
	output  string
	verbose bool
}

func (j job) execute(cmd command, opts options) error {
	in := make([]sound.Sound, 0, len(j.inputs))
	for _, path := range j.inputs {
		s, err := soundfx.Load(path)
		if err != nil {
			return err
		}

		if j.verbose {
			log.Printf("Input %s: %d Hz, %d frames, %v", path, s.Rate, s.Frames(), s.Duration())
		}

		in = append(in, s)
	}

	out, err := cmd.apply(in, opts)
	if err != nil {
		return fmt.Errorf("applying effect: %w", err)
	}

	if j.verbose {
		log.Printf("Output %s: %d Hz, %d frames, %v", j.output, out.Rate, out.Frames(), out.Duration())
	}

	return soundfx.Save(j.output, out)
}
