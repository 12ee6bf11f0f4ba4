package outlet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// u and v translate a rule-file vertex index into the X/Y adjacency-matrix
// lookup tables used while building an outlet from a non-inverted rule;
// ReadOutlets swaps them (passing V, U instead) to build the inverted
// outlet. Verbatim from discharge.c's static U, V arrays.
var u = [17]int{0, 0, 0, 1, 0, 3, 2, 1, 4, 3, 8, 3, 0, 0, 5, 6, 15}
var v = [17]int{0, 0, 1, 0, 2, 0, 1, 3, 2, 5, 2, 9, 4, 12, 0, 1, 1}

// ReadOutlets parses the rule file format of [D, Section 2] into the
// outlet table for a trivial axle of a2x's degree. Grounded on
// ReadOutlets/DoOutlet.
func ReadOutlets(r io.Reader, a2x *axle.Axle) ([]Outlet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 64*1024)

	var outlets []Outlet
	var lastZ, lastB [17]int
	haveLast := false
	lineno := 0

	nextFields := func() ([]string, bool) {
		for sc.Scan() {
			lineno++
			line := sc.Text()
			trimmed := strings.TrimLeft(line, " \t")
			if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '\\' {
				continue
			}
			return strings.Fields(line), true
		}
		return nil, false
	}

	for {
		fields, ok := nextFields()
		if !ok {
			break
		}
		if len(fields) < 2 {
			return nil, verifyerr.New(verifyerr.CategoryFormat, lineno, "unable to read first line of rule").WithLine(lineno)
		}
		number, err := strconv.Atoi(fields[0])
		if err != nil || number == 0 {
			return nil, verifyerr.New(verifyerr.CategoryFormat, lineno, "rule has number zero or is malformed").WithLine(lineno)
		}

		if fields[1][0] == 'i' {
			if !haveLast {
				return nil, verifyerr.New(verifyerr.CategoryFormat, lineno, "illegal rule reference").WithLine(lineno)
			}
			if len(outlets) >= limits.MaxOutlets-2 {
				return nil, verifyerr.New(verifyerr.CategoryResource, lineno, "too many outlets").WithLine(lineno)
			}
			if t, ok, err := doOutlet(a2x, number, v, u, lastZ, lastB, lineno); err != nil {
				return nil, err
			} else if ok {
				outlets = append(outlets, *t)
			}
			if t, ok, err := doOutlet(a2x, -number, v, u, lastZ, lastB, lineno); err != nil {
				return nil, err
			} else if ok {
				outlets = append(outlets, *t)
			}
			continue
		}

		if len(fields) < 3 {
			return nil, verifyerr.New(verifyerr.CategoryFormat, lineno, "unable to read source or sink").WithLine(lineno)
		}
		b0, err1 := strconv.Atoi(fields[1])
		b1, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			return nil, verifyerr.New(verifyerr.CategoryFormat, lineno, "unable to read source or sink").WithLine(lineno)
		}
		contFields, ok := nextFields()
		if !ok {
			return nil, verifyerr.New(verifyerr.CategoryIO, lineno, "unexpected end of rule file").WithLine(lineno)
		}
		var z, b [17]int
		b[0], b[1] = b0, b1
		n := 2
		for idx := 0; idx+1 < len(contFields); idx += 2 {
			if n > 16 {
				return nil, verifyerr.New(verifyerr.CategoryResource, lineno, "too many vertices in a rule").WithLine(lineno)
			}
			zv, e1 := strconv.Atoi(contFields[idx])
			bv, e2 := strconv.Atoi(contFields[idx+1])
			if e1 != nil || e2 != nil || zv < 0 || zv > 16 {
				return nil, verifyerr.New(verifyerr.CategoryFormat, lineno, "illegal entry in rule file").WithLine(lineno)
			}
			z[n], b[n] = zv, bv
			n++
		}
		z[0] = n
		lastZ, lastB, haveLast = z, b, true

		if len(outlets) >= limits.MaxOutlets-2 {
			return nil, verifyerr.New(verifyerr.CategoryResource, lineno, "too many outlets").WithLine(lineno)
		}
		if t, ok, err := doOutlet(a2x, number, u, v, z, b, lineno); err != nil {
			return nil, err
		} else if ok {
			outlets = append(outlets, *t)
		}
		if t, ok, err := doOutlet(a2x, -number, u, v, z, b, lineno); err != nil {
			return nil, err
		} else if ok {
			outlets = append(outlets, *t)
		}
	}
	return outlets, nil
}

// doOutlet builds one outlet from rule data z/b, using X to resolve a
// source-side vertex reference and Y a sink-side one. Returns ok==false
// (no error) when the outlet's hub-degree interval excludes this axle's
// degree — it simply does not apply, not a failure. Grounded on DoOutlet.
func doOutlet(a2x *axle.Axle, number int, x, y, z, b [17]int, lineno int) (*Outlet, bool, error) {
	adjmat := axle.BuildAdjMat(a2x)
	deg := a2x.Low[0]

	t := &Outlet{NoLines: z[0] - 1, Number: number}
	var phi [17]int
	for i := range phi {
		phi[i] = -1
	}
	var k int
	if number > 0 {
		phi[0], phi[1], t.Value, k = 1, 0, 1, 1
	} else {
		phi[0], phi[1], t.Value, k = 0, 1, -1, 0
	}
	t.Pos[0] = 1

	i := 0
	for j := 0; j < z[0]; j++ {
		t.Low[i] = b[j] / 10
		t.Upp[i] = b[j] % 10
		if t.Upp[i] == 9 {
			t.Upp[i] = limits.Infty
		}
		if t.Low[i] == 0 {
			t.Low[i] = t.Upp[i]
		}
		if t.Low[i] > t.Upp[i] {
			return nil, false, verifyerr.New(verifyerr.CategoryFormat, lineno, "condition (T2) from def of outlet violated").WithLine(lineno)
		}
		if t.Low[i] < 5 || t.Low[i] > 9 || t.Upp[i] > limits.Infty || t.Upp[i] == 9 {
			return nil, false, verifyerr.New(verifyerr.CategoryFormat, lineno, "condition (T3) from def of outlet violated").WithLine(lineno)
		}
		if j == k {
			if t.Low[k] > deg || t.Upp[k] < deg {
				return nil, false, nil
			}
			continue
		}
		if j >= 2 {
			up := phi[x[z[j]]]
			vp := phi[y[z[j]]]
			if up < 0 || up > 5*deg || vp < 0 || vp > 5*deg {
				return nil, false, verifyerr.New(verifyerr.CategoryFormat, lineno, "rule references illegal vertex").WithLine(lineno)
			}
			w := adjmat.At(up, vp)
			t.Pos[i] = w
			phi[z[j]] = w
		}
		pv := t.Pos[i]
		if pv <= 0 || pv > 5*deg {
			return nil, false, verifyerr.New(verifyerr.CategoryFormat, lineno, "rule uses illegal vertex").WithLine(lineno)
		}
		if pv <= deg && t.Low[i] == t.Upp[i] {
			axle.DoFan(deg, pv, t.Low[i], adjmat)
		}
		i++
	}
	return t, true, nil
}

// DumpFile renders outlets in the fixed outlet.et text format: one header
// line "<n>  <value>              <number>" followed by NoLines
// constraint lines, then a blank separator. Grounded on PrintOutlet.
func DumpFile(w io.Writer, outlets []Outlet) error {
	for n, t := range outlets {
		if _, err := fmt.Fprintf(w, "%d  %d              %d\n", n, t.Value, t.Number); err != nil {
			return err
		}
		for i := 0; i < t.NoLines; i++ {
			if _, err := fmt.Fprintf(w, "%2d  %2d  %2d\n", t.Pos[i], t.Low[i], t.Upp[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
