// Command discharge replays a discharging presentation against a rule
// file and an unavoidable-set file, per spec §6.
//
// Usage: discharge <presentation> [<lineno> <printmode>]
// lineno selects which presentation line gets detailed narration (0 means
// every line); printmode is one of narrate.PRTLIN..PRTALL. With no
// arguments and no terminal input redirected, prompts on stdin.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fourcolor/discharge"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

const (
	ruleFile = "rules"
	unavSet  = "unavoidable.conf"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	var path string
	var lineno, printmode int

	switch {
	case len(args) >= 1:
		path = args[0]
		if len(args) >= 3 {
			lineno, _ = strconv.Atoi(args[1])
			printmode, _ = strconv.Atoi(args[2])
		}
	default:
		fmt.Fprint(stdout, "Presentation file, line number, print mode: ")
		sc := bufio.NewScanner(stdin)
		if sc.Scan() {
			fs := strings.Fields(sc.Text())
			if len(fs) >= 1 {
				path = fs[0]
			}
			if len(fs) >= 3 {
				lineno, _ = strconv.Atoi(fs[1])
				printmode, _ = strconv.Atoi(fs[2])
			}
		}
	}

	pres, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "Can't open %s\n", path)
		return 1
	}
	defer pres.Close()

	rules, err := os.Open(ruleFile)
	if err != nil {
		fmt.Fprintf(stderr, "Can't open %s\n", ruleFile)
		return 1
	}
	defer rules.Close()

	unav, err := os.Open(unavSet)
	if err != nil {
		fmt.Fprintf(stderr, "Can't open %s\n", unavSet)
		return 1
	}
	defer unav.Close()

	p := narrate.New(stdout, narrate.Level(printmode))
	if err := discharge.VerifyPresentation(pres, rules, unav, nil, p, lineno, narrate.Level(printmode)); err != nil {
		var ve *verifyerr.VerificationError
		if errors.As(err, &ve) {
			fmt.Fprintf(stderr, "%s\n", ve.Error())
			return ve.Code
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s verified\n", path)
	return 0
}
