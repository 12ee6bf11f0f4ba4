// Command reduce verifies that every configuration in a configuration
// file is D-reducible (or has a confirmed contract), per spec §6.
//
// Usage: reduce [<configfile>]   (default unavoidable.conf)
// With no arguments and no terminal input redirected, prompts on stdin.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
	"github.com/katalvlaran/fourcolor/reduction"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	path := "unavoidable.conf"
	switch {
	case len(args) >= 1:
		path = args[0]
	default:
		fmt.Fprint(stdout, "Configuration file: ")
		sc := bufio.NewScanner(stdin)
		if sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				path = line
			}
		}
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "Can't open %s\n", path)
		return 1
	}
	defer f.Close()

	p := narrate.New(stdout, narrate.PRTBAS)
	count, err := reduction.VerifyAll(f, p)
	if err != nil {
		var ve *verifyerr.VerificationError
		if errors.As(err, &ve) {
			fmt.Fprintf(stderr, "%s\n", ve.Error())
			return ve.Code
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Reducibility of %d configurations verified\n", count)
	return 0
}
