package discharge

import (
	"fmt"
	"io"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/lineio"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
	"github.com/katalvlaran/fourcolor/question"
	"github.com/katalvlaran/fourcolor/subconf"
)

// ReduceSet is the loaded unavoidable set: every reducible configuration
// together with the question precomputed for matching it against a
// candidate axle's skeleton. Grounded on the conf/redquestions arrays
// GetConf populates.
type ReduceSet struct {
	Configs   []*confmat.Configuration
	Questions []*question.Question
}

// LoadUnavoidableSet reads every configuration record off r via
// confmat.ReadNext, precomputing its question and checking its radius
// is at most two. Grounded on GetConf.
func LoadUnavoidableSet(r io.Reader) (*ReduceSet, error) {
	rd := lineio.New(r)
	rs := &ReduceSet{}
	for {
		cfg, err := confmat.ReadNext(rd)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rs.Configs) >= limits.Confs {
			return nil, verifyerr.New(verifyerr.CategoryResource, 24,
				fmt.Sprintf("more than %d configurations", limits.Confs))
		}
		if err := cfg.CheckRadius(); err != nil {
			return nil, err
		}
		rs.Configs = append(rs.Configs, cfg)
		rs.Questions = append(rs.Questions, question.Get(cfg))
	}
	return rs, nil
}

// Reduce tests reducibility of axle a against rs, per [D]: it pushes a
// onto an explicit stack, and for each popped candidate searches rs for
// a configuration whose question matches the candidate's skeleton
// (subconf.SubConf); a match is independently re-verified
// (subconf.CheckIso), then every ring-exterior vertex with a still-open
// degree interval spawns a child with its upper bound lowered by one.
// The axle is reducible iff the stack empties without a failed match.
// Grounded on Reduce.
func (rs *ReduceSet) Reduce(a *axle.Axle, lineno int, p *narrate.Printer) (bool, error) {
	stack := []*axle.Axle{a.Copy()}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.Basef("axle from stack:\n%s", b)

		adjmat := axle.BuildAdjMat(b)
		edgelist, err := subconf.Build(b)
		if err != nil {
			return false, err
		}

		h := -1
		var image axle.Vertices
		for idx, q := range rs.Questions {
			img, ok := subconf.SubConf(adjmat, &b.Upp, q, edgelist)
			if ok {
				h, image = idx, img
				break
			}
		}
		if h < 0 {
			p.Basef("not reducible\n")
			return false, nil
		}

		redverts := rs.Questions[h].NVerts
		redring := rs.Questions[h].Ring
		p.Basef("configuration %d matched\n", h)

		if rs.Configs[h] != nil {
			if err := subconf.CheckIso(rs.Configs[h], b, image, lineno); err != nil {
				return false, err
			}
		}

		for i := redring + 1; i <= redverts; i++ {
			v := image[i]
			if b.Low[v] == b.Upp[v] {
				continue
			}
			if len(stack) >= limits.MaxAStack {
				return false, verifyerr.New(verifyerr.CategoryResource, lineno,
					fmt.Sprintf("more than %d elements in axle stack needed", limits.MaxAStack)).WithLine(lineno)
			}
			child := b.Copy()
			child.Upp[v] = b.Upp[v] - 1
			stack = append(stack, child)
		}
	}
	p.Basef("all possibilities for lower degrees tested\n")
	return true, nil
}
