package lut

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Minimal Common LUT Format (CLF) support: a ProcessList holding a single
// LUT1D operator over the implicit [0, 1] domain. That covers sampled
// transfer curves, which is all this package produces.

type clf_array struct {
	Dim   string `xml:"dim,attr"`
	Value string `xml:",chardata"`
}

type clf_lut1d struct {
	ID          string    `xml:"id,attr,omitempty"`
	Name        string    `xml:"name,attr,omitempty"`
	InBitDepth  string    `xml:"inBitDepth,attr"`
	OutBitDepth string    `xml:"outBitDepth,attr"`
	Array       clf_array `xml:"Array"`
}

type clf_process_list struct {
	XMLName     xml.Name   `xml:"ProcessList"`
	ID          string     `xml:"id,attr,omitempty"`
	Version     string     `xml:"compCLFversion,attr"`
	Description []string   `xml:"Description,omitempty"`
	LUT1D       *clf_lut1d `xml:"LUT1D"`
}

// WriteCLF writes l as a CLF ProcessList. Only the unit domain can be
// represented; other domains are rejected.
func WriteCLF(w io.Writer, l *LUT1D, decimals int) error {
	if err := l.validate(); err != nil {
		return err
	}
	if l.Domain != UnitDomain {
		return fmt.Errorf("lut: CLF LUT1D requires the [0, 1] domain, got [%v, %v]",
			l.Domain[0], l.Domain[1])
	}
	var b strings.Builder
	for _, v := range l.Table {
		fmt.Fprintf(&b, "\n%.*f", decimals, v)
	}
	b.WriteString("\n")
	pl := clf_process_list{
		ID:          l.Name,
		Version:     "2.0",
		Description: l.Comments,
		LUT1D: &clf_lut1d{
			Name:        l.Name,
			InBitDepth:  "32f",
			OutBitDepth: "32f",
			Array: clf_array{
				Dim:   fmt.Sprintf("%d 1", len(l.Table)),
				Value: b.String(),
			},
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(pl); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteCLFFile writes l to path as CLF.
func WriteCLFFile(path string, l *LUT1D, decimals int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCLF(f, l, decimals)
}

// ReadCLF parses a ProcessList containing a single LUT1D operator.
func ReadCLF(r io.Reader) (*LUT1D, error) {
	var pl clf_process_list
	if err := xml.NewDecoder(r).Decode(&pl); err != nil {
		return nil, fmt.Errorf("clf: %w", err)
	}
	if pl.LUT1D == nil {
		return nil, fmt.Errorf("clf: no LUT1D operator in ProcessList %q", pl.ID)
	}
	fields := strings.Fields(pl.LUT1D.Array.Value)
	dims := strings.Fields(pl.LUT1D.Array.Dim)
	if len(dims) != 2 {
		return nil, fmt.Errorf("clf: bad Array dim %q", pl.LUT1D.Array.Dim)
	}
	n, err := strconv.Atoi(dims[0])
	if err != nil || n < 2 {
		return nil, fmt.Errorf("clf: bad Array dim %q", pl.LUT1D.Array.Dim)
	}
	channels, err := strconv.Atoi(dims[1])
	if err != nil || channels != 1 {
		return nil, fmt.Errorf("clf: only single-channel LUT1D supported, dim %q", pl.LUT1D.Array.Dim)
	}
	if len(fields) != n {
		return nil, fmt.Errorf("clf: Array dim %q does not match %d values", pl.LUT1D.Array.Dim, len(fields))
	}
	table := make([]float64, n)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("clf: bad Array value %q", field)
		}
		table[i] = v
	}
	name := pl.LUT1D.Name
	if name == "" {
		name = pl.ID
	}
	l := &LUT1D{Name: name, Domain: UnitDomain, Table: table, Comments: pl.Description}
	if len(l.Comments) == 0 {
		l.Comments = nil
	}
	return l, nil
}

// ReadCLFFile parses the CLF file at path.
func ReadCLFFile(path string) (*LUT1D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCLF(f)
}
