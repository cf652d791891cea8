package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the first line of every workload file.
const Header = "#id arrival runtime priority memsize\n"

// Field ranges are [0, n-1].
const (
	arrivalStep  = 11
	runtimeRange = 30
	priorities   = 11
	memRange     = 256
)

// ProcessGenerator produces process records in arrival order.
type ProcessGenerator struct {
	rand    Source
	arrival int
	nextID  int
	buf     []byte
}

// Init resets the generator to the first record and binds it to src.
func (g *ProcessGenerator) Init(src Source) {
	g.rand = src
	g.arrival = 1
	g.nextID = 1
}

// Next draws the next record. The draw order is arrival increment,
// runtime, priority, memsize.
func (g *ProcessGenerator) Next() Record {
	g.arrival += g.rand.IntN(arrivalStep)
	r := Record{
		ID:       g.nextID,
		Arrival:  g.arrival,
		Runtime:  g.rand.IntN(runtimeRange),
		Priority: g.rand.IntN(priorities),
		MemSize:  g.rand.IntN(memRange),
	}
	g.nextID++
	return r
}

// WriteLine generates the next record and writes it as a tab-separated line.
func (g *ProcessGenerator) WriteLine(w io.Writer) (Record, error) {
	r := g.Next()
	g.buf = appendRecord(g.buf[:0], r)
	_, err := w.Write(g.buf)
	return r, err
}

func appendRecord(b []byte, r Record) []byte {
	b = strconv.AppendInt(b, int64(r.ID), 10)
	b = append(b, '\t')
	b = strconv.AppendInt(b, int64(r.Arrival), 10)
	b = append(b, '\t')
	b = strconv.AppendInt(b, int64(r.Runtime), 10)
	b = append(b, '\t')
	b = strconv.AppendInt(b, int64(r.Priority), 10)
	b = append(b, '\t')
	b = strconv.AppendInt(b, int64(r.MemSize), 10)
	return append(b, '\n')
}

// WriteHeader writes the workload file header.
func WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, Header)
	return err
}

// Generate writes the header followed by n records drawn from src.
// A negative n is treated as zero. onRecord, if set, is called after each
// record is written.
func Generate(w io.Writer, n int, src Source, onRecord func(Record)) (Summary, error) {
	cw := &countingWriter{w: w}
	var sum Summary

	if err := WriteHeader(cw); err != nil {
		return sum, err
	}

	var g ProcessGenerator
	g.Init(src)
	for i := 0; i < n; i++ {
		r, err := g.WriteLine(cw)
		if err != nil {
			sum.Bytes = cw.n
			return sum, err
		}
		sum.Records++
		if onRecord != nil {
			onRecord(r)
		}
	}

	sum.Bytes = cw.n
	return sum, nil
}

// WriteFile creates (or truncates) path and generates n records into it.
// The file is closed on every return path.
func WriteFile(path string, n int, src Source, onRecord func(Record)) (sum Summary, err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return sum, fmt.Errorf("%w: create directory %s: %v", ErrIO, dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return sum, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrIO, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	sum, err = Generate(bw, n, src, onRecord)
	if err != nil {
		return sum, fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	if err := bw.Flush(); err != nil {
		return sum, fmt.Errorf("%w: flush %s: %v", ErrIO, path, err)
	}
	return sum, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
