package lut

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Cinespace .csp, 1D form. The file is line oriented: a CSPLUTV100 magic,
// a dimensionality marker, a metadata block, three per-channel input
// preludes and then the table rows with one red/green/blue triple per line.
// A single-channel LUT1D is written with its value replicated across the
// three channels.

const csp_magic = "CSPLUTV100"

// WriteCinespace writes l to w in .csp 1D form with the given number of
// decimals.
func WriteCinespace(w io.Writer, l *LUT1D, decimals int) error {
	if err := l.validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n1D\n\n", csp_magic)
	fmt.Fprintf(bw, "BEGIN METADATA\n%s\n", l.Name)
	for _, comment := range l.Comments {
		fmt.Fprintf(bw, "%s\n", comment)
	}
	fmt.Fprintf(bw, "END METADATA\n\n")
	for range 3 {
		fmt.Fprintf(bw, "2\n")
		fmt.Fprintf(bw, "%.*f %.*f\n", decimals, l.Domain[0], decimals, l.Domain[1])
		fmt.Fprintf(bw, "0.0 1.0\n")
	}
	fmt.Fprintf(bw, "\n%d\n", len(l.Table))
	for _, v := range l.Table {
		fmt.Fprintf(bw, "%.*f %.*f %.*f\n", decimals, v, decimals, v, decimals, v)
	}
	return bw.Flush()
}

// WriteCinespaceFile writes l to path in .csp 1D form.
func WriteCinespaceFile(path string, l *LUT1D, decimals int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCinespace(f, l, decimals)
}

type csp_scanner struct {
	s    *bufio.Scanner
	line int
}

// next returns the next line, trimmed. Blank lines are skipped.
func (c *csp_scanner) next() (string, error) {
	for c.s.Scan() {
		c.line++
		if t := strings.TrimSpace(c.s.Text()); t != "" {
			return t, nil
		}
	}
	if err := c.s.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func (c *csp_scanner) errorf(format string, a ...any) error {
	return fmt.Errorf("csp line %d: %s", c.line, fmt.Sprintf(format, a...))
}

// ReadCinespace parses a 1D .csp stream written by WriteCinespace. The
// red channel is taken as the table; files whose channels disagree are
// rejected.
func ReadCinespace(r io.Reader) (*LUT1D, error) {
	c := &csp_scanner{s: bufio.NewScanner(r)}
	magic, err := c.next()
	if err != nil {
		return nil, err
	}
	if magic != csp_magic {
		return nil, c.errorf("bad magic %q", magic)
	}
	dim, err := c.next()
	if err != nil {
		return nil, err
	}
	if dim != "1D" {
		return nil, c.errorf("unsupported dimensionality %q", dim)
	}
	begin, err := c.next()
	if err != nil {
		return nil, err
	}
	if begin != "BEGIN METADATA" {
		return nil, c.errorf("expected BEGIN METADATA, got %q", begin)
	}
	l := &LUT1D{Domain: UnitDomain}
	meta := []string{}
	for {
		line, err := c.next()
		if err != nil {
			return nil, err
		}
		if line == "END METADATA" {
			break
		}
		meta = append(meta, line)
	}
	if len(meta) > 0 {
		l.Name = meta[0]
		l.Comments = meta[1:]
		if len(l.Comments) == 0 {
			l.Comments = nil
		}
	}
	for ch := range 3 {
		count, err := c.next()
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(count)
		if err != nil || n < 2 {
			return nil, c.errorf("bad prelude size %q", count)
		}
		inputs, err := c.read_floats(n)
		if err != nil {
			return nil, err
		}
		if _, err := c.read_floats(n); err != nil {
			return nil, err
		}
		if ch == 0 {
			l.Domain = [2]float64{inputs[0], inputs[n-1]}
		}
	}
	size_line, err := c.next()
	if err != nil {
		return nil, err
	}
	// 3D-style writers emit "N N N"; accept both forms.
	size, err := strconv.Atoi(strings.Fields(size_line)[0])
	if err != nil || size < 2 {
		return nil, c.errorf("bad table size %q", size_line)
	}
	l.Table = make([]float64, size)
	for i := range size {
		row, err := c.read_floats(3)
		if err != nil {
			return nil, err
		}
		if row[0] != row[1] || row[1] != row[2] {
			return nil, c.errorf("channels disagree: %v", row)
		}
		l.Table[i] = row[0]
	}
	return l, nil
}

// ReadCinespaceFile parses the 1D .csp file at path.
func ReadCinespaceFile(path string) (*LUT1D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCinespace(f)
}

// read_floats consumes lines until n floats have been collected.
func (c *csp_scanner) read_floats(n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for len(out) < n {
		line, err := c.next()
		if err != nil {
			return nil, err
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, c.errorf("bad number %q", field)
			}
			out = append(out, v)
		}
	}
	if len(out) != n {
		return nil, c.errorf("expected %d values, got %d", n, len(out))
	}
	return out, nil
}
