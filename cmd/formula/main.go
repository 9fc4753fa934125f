package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/quarzo/formula"
)

func main() {
	var (
		inname  string
		verb    string
		jobs    int
		depth   int
		tokens  int
		verbose bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&jobs, "jobs", 1, "evaluate lines concurrently with this many workers")
	flag.IntVar(&depth, "depth", 0, "max nesting depth, 0 for unlimited")
	flag.IntVar(&tokens, "tokens", 0, "max token count, 0 for unlimited")
	flag.BoolVar(&verbose, "v", false, "trace evaluation steps")
	flag.Parse()

	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.TraceLevel)
	}
	opts := []formula.Option{
		formula.MaxDepth(depth),
		formula.MaxTokens(tokens),
		formula.WithLogger(log),
		formula.Debug(verbose),
		formula.Parallelism(jobs),
	}

	exprs := flag.Args()
	if f, err := infile(inname, flag.NArg() == 0); err != nil {
		log.Fatal(err)
	} else if f != nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if s := strings.TrimSpace(sc.Text()); s != "" {
				exprs = append(exprs, s)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	bad := color.New(color.FgRed)
	verb += "\n"
	code := 0
	for _, r := range formula.EvalAll(context.Background(), exprs, opts...) {
		if r.Err != nil {
			bad.Fprintln(os.Stderr, r.Err)
			code = 1
			continue
		}
		fmt.Printf(verb, r.Value)
	}
	os.Exit(code)
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
