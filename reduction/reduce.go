package reduction

import (
	"fmt"
	"io"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/contract"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/lineio"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
	"github.com/katalvlaran/fourcolor/matching"
	"github.com/katalvlaran/fourcolor/skeleton"
)

// Result summarizes one configuration's reducibility verdict.
type Result struct {
	Name       string
	Ring       int
	NLive      int
	Passes     int
	DReducible bool
}

// VerifyOne runs the full reducibility pipeline on a single already-parsed
// and validated configuration.
func VerifyOne(cfg *confmat.Configuration, p *narrate.Printer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Ring > limits.MaxRing {
		return nil, verifyerr.New(verifyerr.CategoryResource, 43,
			fmt.Sprintf("ring-size %d bigger than %d", cfg.Ring, limits.MaxRing))
	}

	edgeno := skeleton.Number(cfg)
	tbl, err := skeleton.Build(cfg, edgeno)
	if err != nil {
		return nil, err
	}

	live, extent := coloring.FindLive(tbl.Angle, cfg.Ring, tbl.Edges)
	if extent != cfg.Extendable {
		return nil, verifyerr.New(verifyerr.CategoryMathematicalClaim, 31,
			fmt.Sprintf("discrepancy in number of extending colourings: got %d, claimed %d", extent, cfg.Extendable))
	}

	nlive := live.Count()
	p.Status(cfg.Ring, len(live), nlive, 0)

	power := coloring.Power(cfg.Ring + 1)
	nchar := matching.NChar(cfg.Ring)
	real := make([]byte, nchar+1)
	for i := range real {
		real[i] = 255
	}

	passes := 0
	for {
		if _, err := matching.TestMatch(cfg.Ring, power, live, real, nchar); err != nil {
			return nil, err
		}
		passes++
		newNLive, cont := matching.UpdateLive(live, nlive)
		nlive = newNLive
		p.Status(cfg.Ring, len(live), nlive, passes)
		if !cont {
			break
		}
	}

	if err := contract.Check(live, nlive, tbl, cfg.MaxCons); err != nil {
		return nil, err
	}

	return &Result{Name: cfg.Name, Ring: cfg.Ring, NLive: nlive, Passes: passes, DReducible: nlive == 0}, nil
}

// VerifyAll reads every configuration record from r and verifies each in
// turn, stopping at the first failure. Returns the count of configurations
// successfully verified.
func VerifyAll(r io.Reader, p *narrate.Printer) (int, error) {
	rd := lineio.New(r)
	count := 0
	for {
		cfg, err := confmat.ReadNext(rd)
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if _, err := VerifyOne(cfg, p); err != nil {
			return count, err
		}
		count++
	}
}
