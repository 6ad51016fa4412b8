// Package driver implements the Encoder Driver of spec.md §4.6: selects
// GIS or ILP, times the build and encode phases, and writes the output
// file under <out_dir>/k<K>/<out_file> with a provenance header.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/netsensor/idcode/internal/cardinality"
	"github.com/netsensor/idcode/internal/config"
	"github.com/netsensor/idcode/internal/errs"
	"github.com/netsensor/idcode/internal/gisenc"
	"github.com/netsensor/idcode/internal/graphio"
	"github.com/netsensor/idcode/internal/ilpenc"
	"github.com/netsensor/idcode/internal/preprocess"
	"github.com/netsensor/idcode/internal/provenance"
)

// Options is the argument matrix of spec.md §6, already parsed and
// validated by cmd/idcode.
type Options struct {
	NetworkPath         string
	OutDir              string
	OutFile             string
	Encoding            string // "gis" or "ilp"
	K                   int
	Budget              int // -1 means "unbounded, use K instead"
	TwoStep             bool
	RemoveSupersets     bool
	Check2Neighbourhood bool
}

func (o Options) cardinalityBound() int {
	if o.Budget != -1 {
		return o.Budget
	}
	return o.K
}

// Run executes one full encoding pass: load, preprocess, encode, write.
// It logs "Building took ... / Encoding took ... for k = K" to stdout on
// both success and failure, per spec.md §4.6.
func Run(cfg config.Config, opts Options, stdout io.Writer) error {
	if opts.K < 1 {
		return errs.New(errs.Argument, "build", fmt.Errorf("k must be >= 1, got %d", opts.K))
	}
	if opts.Encoding != "gis" && opts.Encoding != "ilp" {
		return errs.New(errs.Argument, "build", fmt.Errorf("encoding must be gis or ilp, got %q", opts.Encoding))
	}

	wall := newWallclockTimer()
	cpu := newProcessTimer()

	g, err := graphio.Load(opts.NetworkPath)
	if err != nil {
		logPhase(stdout, "Building", wall, cpu, opts.K)
		return errs.New(errs.SourceFormat, "build", err)
	}

	res, err := preprocess.Run(g, opts.TwoStep)
	if err != nil {
		logPhase(stdout, "Building", wall, cpu, opts.K)
		return errs.New(errs.Preprocess, "build", err)
	}
	logPhase(stdout, "Building", wall, cpu, opts.K)

	encWall := newWallclockTimer()
	encCPU := newProcessTimer()

	outPath, err := outputPath(opts.OutDir, opts.K, opts.OutFile)
	if err != nil {
		logPhase(stdout, "Encoding", encWall, encCPU, opts.K)
		return errs.New(errs.IO, "encode", err)
	}

	header := provenance.Build(provenance.Header{
		NetworkFile:         opts.NetworkPath,
		Encoding:            opts.Encoding,
		TwoStep:             opts.TwoStep,
		K:                   opts.K,
		RemoveSupersets:     opts.RemoveSupersets,
		Check2Neighbourhood: opts.Check2Neighbourhood,
		TwinsRemoved:        !opts.TwoStep && len(res.TwinMap) > 0,
		NumVertices:         res.Graph.N,
		NumEdges:            countEdges(res.Graph),
		ProjectDir:          cfg.ProjectDir,
		Hostname:            cfg.Hostname,
		LabelMap:            res.LabelMap,
		TwinMap:             res.TwinMap,
		Now:                 time.Now(),
	})

	if err := encodeAndWrite(cfg, opts, res, header, outPath); err != nil {
		logPhase(stdout, "Encoding", encWall, encCPU, opts.K)
		var tagged *errs.Error
		if errors.As(err, &tagged) {
			return tagged
		}
		return errs.New(errs.ExternalTool, "encode", err)
	}

	logPhase(stdout, "Encoding", encWall, encCPU, opts.K)
	return nil
}

func encodeAndWrite(cfg config.Config, opts Options, res *preprocess.Result, header, outPath string) error {
	enc := selectEncoder(cfg)

	f, err := os.Create(outPath)
	if err != nil {
		return errs.New(errs.IO, "encode", err)
	}
	defer f.Close()

	switch opts.Encoding {
	case "gis":
		formula, err := gisenc.Build(res, opts.cardinalityBound(), opts.TwoStep, enc)
		if err != nil {
			return err
		}
		if err := gisenc.WriteDIMACS(f, formula, header); err != nil {
			return errs.New(errs.IO, "encode", err)
		}
		return nil
	default: // "ilp"
		var model *ilpenc.Model
		if opts.TwoStep {
			model, err = ilpenc.EncodeTwoStep(res, opts.K, ilpenc.UniquenessOptions{
				RemoveSupersets:     opts.RemoveSupersets,
				Check2Neighbourhood: opts.Check2Neighbourhood,
			})
		} else {
			model, err = ilpenc.EncodeOneStep(res, opts.K)
		}
		if err != nil {
			return err
		}
		if err := ilpenc.WriteLP(f, model, header); err != nil {
			return errs.New(errs.IO, "encode", err)
		}
		return nil
	}
}

func selectEncoder(cfg config.Config) cardinality.Encoder {
	if cfg.PBEncoderPath == "" {
		return cardinality.SequentialEncoder{}
	}
	return cardinality.ExternalEncoder{
		BinaryPath: filepath.Join(cfg.PBEncoderPath, "pbencoder"),
		TempDir:    cfg.TempDir,
	}
}

func outputPath(outDir string, k int, outFile string) (string, error) {
	dir := filepath.Join(outDir, fmt.Sprintf("k%d", k))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, outFile), nil
}

func countEdges(cg *preprocess.CanonicalGraph) int {
	total := 0
	for v := 1; v <= cg.N; v++ {
		for _, u := range cg.Neighbors(v) {
			if u >= v {
				total++
			}
		}
	}
	return total
}

func logPhase(w io.Writer, phase string, wall *wallclockTimer, cpu *processTimer, k int) {
	fmt.Fprintf(w, "%s took %.4f seconds (wall), %.4f CPU seconds for k = %d\n",
		phase, wall.Elapsed().Seconds(), cpu.Elapsed().Seconds(), k)
}
