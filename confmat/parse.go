package confmat

import (
	"fmt"
	"io"

	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/lineio"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// ReadNext parses one configuration record from rd: a name line, a header
// line (n, r, extendable, maxcons), a contract line, n adjacency lines, and
// coordinate lines totalling n integers, followed by a blank separator.
//
// On clean EOF (no more bytes before the name line), ReadNext returns
// io.EOF and a nil Configuration — "no more records", per spec §4.1.
func ReadNext(rd *lineio.Reader) (*Configuration, error) {
	if err := rd.NextLine(); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("confmat: ReadNext: %w", wrapFormat(err))
	}
	name := rd.RawLine()
	for rd.Remaining() > 0 {
		rd.Token()
	}
	if name == "" {
		return nil, verifyerr.New(verifyerr.CategoryFormat, 11, "empty configuration name").WithLine(rd.Line())
	}

	header, err := rd.Ints(4)
	if err != nil {
		return nil, verifyerr.New(verifyerr.CategoryFormat, 11, "malformed header line: "+err.Error()).WithLine(rd.Line())
	}
	cfg := &Configuration{
		Name:       name,
		N:          header[0],
		Ring:       header[1],
		Extendable: header[2],
		MaxCons:    header[3],
	}
	if cfg.N < 1 || cfg.N > limits.Verts {
		return nil, verifyerr.New(verifyerr.CategoryFormat, 13, fmt.Sprintf("vertex count %d out of range", cfg.N)).WithLine(rd.Line())
	}

	nxs, err := rd.Ints(1)
	if err != nil {
		return nil, verifyerr.New(verifyerr.CategoryFormat, 14, "malformed contract size: "+err.Error()).WithLine(rd.Line())
	}
	nx := nxs[0]
	if nx < 0 || nx > 4 {
		return nil, verifyerr.New(verifyerr.CategoryStructuralInvariant, 20, fmt.Sprintf("contract size %d out of range [0,4]", nx)).WithLine(rd.Line())
	}
	contract, err := rd.Ints(2 * nx)
	if err != nil {
		return nil, verifyerr.New(verifyerr.CategoryFormat, 14, "malformed contract list: "+err.Error()).WithLine(rd.Line())
	}
	cfg.Contract = contract

	for k := 0; k < cfg.N; k++ {
		row, err := rd.Ints(2)
		if err != nil {
			return nil, verifyerr.New(verifyerr.CategoryFormat, 15, "malformed adjacency line: "+err.Error()).WithLine(rd.Line())
		}
		v, d := row[0], row[1]
		if v < 1 || v > cfg.N {
			return nil, verifyerr.New(verifyerr.CategoryFormat, 15, fmt.Sprintf("adjacency vertex %d out of range", v)).WithLine(rd.Line())
		}
		if d < 1 || d > limits.Deg-1 {
			return nil, verifyerr.New(verifyerr.CategoryFormat, 15, fmt.Sprintf("vertex %d degree %d out of range", v, d)).WithLine(rd.Line())
		}
		nbrs, err := rd.Ints(d)
		if err != nil {
			return nil, verifyerr.New(verifyerr.CategoryFormat, 15, "malformed neighbour list: "+err.Error()).WithLine(rd.Line())
		}
		cfg.Degree[v] = d
		for i, n := range nbrs {
			cfg.Adj[v][i] = n
		}
	}

	// Coordinate lines: exactly N integers, format otherwise unconstrained.
	if _, err := rd.Ints(cfg.N); err != nil {
		return nil, verifyerr.New(verifyerr.CategoryFormat, 17, "malformed coordinate lines: "+err.Error()).WithLine(rd.Line())
	}

	if err := rd.SkipBlank(); err != nil && err != io.EOF {
		return nil, verifyerr.New(verifyerr.CategoryFormat, 18, "missing record separator: "+err.Error()).WithLine(rd.Line())
	}

	return cfg, nil
}

func wrapFormat(err error) error {
	return fmt.Errorf("%w: %v", verifyerr.ErrFormat, err)
}
