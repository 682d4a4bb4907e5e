// SPDX-License-Identifier: EPL-2.0

// Command soundfx applies one effect to audio files and writes the result as
// a stereo 16-bit WAV.
//
//	soundfx reverse sounds/mystery.wav mystery_reversed.wav
//	soundfx mix -p 0.7 -conform music.ogg voice.wav mixed.wav
//	soundfx echo -n 3 -delay 0.25 -scale 0.6 hello.wav hello_echo.wav
//	soundfx pan car.wav car_pan.wav
//	soundfx vocals song.mp3 karaoke.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

const (
	exitError = 1
	exitUsage = 2
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("soundfx: ")

	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		usage(os.Stderr)
		return exitUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		yellow.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage(os.Stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	opts := cmd.flags(fs)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	paths := fs.Args()
	if len(paths) != cmd.inputs+1 {
		yellow.Fprintf(os.Stderr, "%s needs %d input file(s) and one output file\n", args[0], cmd.inputs)
		fs.Usage()
		return exitUsage
	}

	j := job{
		inputs:  paths[:cmd.inputs],
		output:  paths[cmd.inputs],
		verbose: *verbose,
	}

	if err := j.execute(cmd, opts); err != nil {
		log.Println(err)
		return exitError
	}

	green.Fprintln(stdout, "Wrote:", j.output)

	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: soundfx <command> [flags] <input...> <output.wav>")
	fmt.Fprintln(w, "commands:")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}
}
