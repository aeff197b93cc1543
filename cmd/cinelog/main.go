package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mbashton/cinelog"
	"github.com/mbashton/cinelog/lut"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cinelog curves
       cinelog encode <curve> <value>...
       cinelog decode <curve> <value>...
       cinelog csp <curve> <output-file> [-size N] [-decode] [-decimals N]
       cinelog clf <curve> <output-file> [-size N] [-decode] [-decimals N]`)
	os.Exit(2)
}

func curve_by_name(name string) (cinelog.Curve, error) {
	c, ok := cinelog.CurveByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown curve %q, one of: %s",
			name, strings.Join(cinelog.CurveNames(), " "))
	}
	return c, nil
}

func eval(args []string, decode bool) error {
	if len(args) < 2 {
		usage()
	}
	c, err := curve_by_name(args[0])
	if err != nil {
		return err
	}
	f := c.Encode
	if decode {
		f = c.Decode
	}
	for _, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", arg, err)
		}
		fmt.Printf("%.12g\n", f(v))
	}
	return nil
}

func sample(args []string, format string) error {
	if len(args) < 2 {
		usage()
	}
	c, err := curve_by_name(args[0])
	if err != nil {
		return err
	}
	output_file := args[1]
	fs := flag.NewFlagSet(format, flag.ExitOnError)
	size := fs.Int("size", 1024, "number of samples")
	decode := fs.Bool("decode", false, "sample the decoding direction instead of encoding")
	decimals := fs.Int("decimals", 7, "formatting decimals")
	if err := fs.Parse(args[2:]); err != nil {
		return err
	}
	direction := cinelog.EncodeDirection
	if *decode {
		direction = cinelog.DecodeDirection
	}
	l, err := lut.FromCurve(c, direction, *size, args[0]+" "+direction.String())
	if err != nil {
		return err
	}
	if format == "csp" {
		err = lut.WriteCinespaceFile(output_file, l, *decimals)
	} else {
		err = lut.WriteCLFFile(output_file, l, *decimals)
	}
	if err == nil {
		fmt.Printf("%d samples of %s written to %s\n", *size, args[0], output_file)
	}
	return err
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "curves":
		for _, name := range cinelog.CurveNames() {
			fmt.Println(name)
		}
	case "encode":
		err = eval(os.Args[2:], false)
	case "decode":
		err = eval(os.Args[2:], true)
	case "csp", "clf":
		err = sample(os.Args[2:], os.Args[1])
	default:
		usage()
	}
}
