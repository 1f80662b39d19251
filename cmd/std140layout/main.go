// Command std140layout prints the std140 layout of a uniform block
// described in YAML.
//
//	std140layout -f scene.yaml -instances 4
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/std140"
	"github.com/gogpu/std140/internal/blockfile"
)

func main() {
	var (
		file      = flag.String("f", "", "block description (YAML)")
		instances = flag.Int("instances", 0, "print dynamic offsets for this many instances")
		verbose   = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *file == "" {
		if flag.NArg() != 1 {
			flag.Usage()
			os.Exit(2)
		}
		*file = flag.Arg(0)
	}
	if *verbose {
		std140.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	block, err := blockfile.Load(*file)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, block, *instances); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, block *blockfile.Block, instances int) error {
	fields, l, err := block.Resolve()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tTYPE\tOFFSET\tALIGN\tSIZE\tSTRIDE\tGAP")
	for _, f := range fields {
		stride, gap := "-", "-"
		if f.Stride > 0 {
			stride = fmt.Sprint(f.Stride)
		}
		if f.Gap > 0 {
			gap = fmt.Sprint(f.Gap)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n", f.Path, f.Type, f.Offset, f.Align, f.Size, stride, gap)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nblock %s: %s\n", block.Name, l)

	if instances > 0 {
		lim := gputypes.DefaultLimits()
		offsets := std140.DynamicOffsets(lim, l, instances)
		fmt.Fprintf(w, "dynamic offsets (alignment %d): %v\n", std140.DynamicOffsetAlignment(lim), offsets)
	}
	return nil
}
