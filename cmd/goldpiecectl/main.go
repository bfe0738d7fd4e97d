// Command goldpiecectl runs headless goldpiece simulations and produces level
// records for the editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/logging"
	"github.com/milk9111/goldpiece/prefabs"
	"github.com/milk9111/goldpiece/session"
)

const usage = `usage: goldpiecectl <command> [flags]

commands:
  simulate  run a level headless and print the jewel and score totals
  record    print the yaml level record of a goldpiece
  copy      put the yaml level record of a goldpiece on the clipboard
  inspect   read a yaml level record from -f or stdin and print what it pays
`

var errUsage = errors.New("goldpiecectl: bad usage")

func main() {
	logging.Setup(os.Getenv("GOLDPIECE_LOG"), os.Stderr)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logging.For("goldpiecectl").Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "simulate":
		return simulate(args[1:], out)
	case "record":
		p, err := pieceFromArgs("record", args[1:])
		if err != nil {
			return err
		}
		b, err := goldpiece.MarshalRecord(p.ToPersistentRecord())
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	case "copy":
		p, err := pieceFromArgs("copy", args[1:])
		if err != nil {
			return err
		}
		b, err := goldpiece.MarshalRecord(p.Copy().ToPersistentRecord())
		if err != nil {
			return err
		}
		if err := clipboard.Init(); err != nil {
			return fmt.Errorf("goldpiecectl: clipboard: %w", err)
		}
		<-clipboard.Write(clipboard.FmtText, b)
		logging.For("goldpiecectl").Info().Int("bytes", len(b)).Msg("record copied")
		return nil
	case "inspect":
		return inspect(args[1:], os.Stdin, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func simulate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	frames := fs.Int("frames", 600, "frames to run")
	level := fs.String("level", "demo.json", "level file in levels/")
	prefabDir := fs.String("prefabs", "", "prefab directory checked before the embedded prefabs")
	seed := fs.Uint64("seed", 1, "random seed for falling directions")
	walk := fs.Float64("walk", 0, "horizontal input held every frame, -1 to 1")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *frames < 0 {
		return fmt.Errorf("%w: negative frame count", errUsage)
	}
	prefabs.SetDir(*prefabDir)

	s, err := session.New(session.Options{Level: *level, Headless: true, Seed: *seed})
	if err != nil {
		return err
	}
	for range *frames {
		if *walk != 0 {
			s.Steer(*walk)
		}
		s.Update()
	}
	jewels, points := s.Totals()
	_, err = fmt.Fprintf(out, "level=%s frames=%d jewels=%d score=%d collected=%d lost=%d\n",
		*level, *frames, jewels, points, s.Collected, s.Lost)
	return err
}

func inspect(args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("f", "", "record file, stdin when empty")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	in := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("goldpiecectl: %w", err)
		}
		defer f.Close()
		in = f
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("goldpiecectl: read record: %w", err)
	}
	r, err := goldpiece.UnmarshalRecord(b)
	if err != nil {
		return err
	}
	p, err := goldpiece.FromPersistentRecord(r)
	if err != nil {
		return err
	}
	v := p.Value()
	pos := p.Position()
	_, err = fmt.Fprintf(out, "%s at %g,%g pays %d jewels and %d points\n", p.DisplayName(), pos.X, pos.Y, v.Jewels, v.Points)
	return err
}

func pieceFromArgs(name string, args []string) (*goldpiece.Piece, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	x := fs.Float64("x", 0, "x position")
	y := fs.Float64("y", 0, "y position")
	colorName := fs.String("color", "yellow", "yellow or red")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	color, err := goldpiece.ParseColor(*colorName)
	if err != nil {
		return nil, err
	}
	return goldpiece.NewStatic(color, cp.Vector{X: *x, Y: *y}), nil
}
