// Command idcode builds a GIS/CNF or ILP encoding of k-identifying codes
// for a network described by an edge-list or Matrix-Market file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/netsensor/idcode/internal/config"
	"github.com/netsensor/idcode/internal/driver"
)

func main() {
	os.Exit(run())
}

func run() int {
	network := flag.String("network", "", "network source file (required)")
	outDir := flag.String("out_dir", "", "output directory (required)")
	outFile := flag.String("out_file", "", "output file basename (required)")
	encoding := flag.String("encoding", "", "gis or ilp (required)")
	k := flag.Int("k", 1, "maximum identifiable set size")
	budget := flag.Int("b", -1, "sensor budget; -1 means unbounded, use k instead")
	twoStep := flag.Bool("two_step", false, "enable two-step encoding")
	removeSupersets := flag.Bool("remove_supersets", false, "enable antichain reduction (ILP only)")
	check2N := flag.Bool("check_2_neighbourhood", false, "enable 2-neighborhood early prune (ILP only)")
	pbEncoder := flag.String("pb_encoder_dir", "", "directory of the external pseudo-Boolean encoder binary")
	flag.Parse()

	if *network == "" || *outDir == "" || *outFile == "" || *encoding == "" {
		fmt.Fprintln(os.Stderr, "idcode: --network, --out_dir, --out_file and --encoding are required")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnvironment(*pbEncoder, "", "")
	opts := driver.Options{
		NetworkPath:         *network,
		OutDir:              *outDir,
		OutFile:             *outFile,
		Encoding:            *encoding,
		K:                   *k,
		Budget:              *budget,
		TwoStep:             *twoStep,
		RemoveSupersets:     *removeSupersets,
		Check2Neighbourhood: *check2N,
	}

	done := make(chan error, 1)
	go func() { done <- driver.Run(cfg, opts, os.Stdout) }()

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "idcode: interrupted")
		return 1
	case err := <-done:
		if err != nil {
			fmt.Fprintln(os.Stderr, "idcode:", err)
			return 1
		}
		return 0
	}
}
