package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harshithgowdakt/granulemask/internal/compression"
	"github.com/harshithgowdakt/granulemask/internal/mask"
	"github.com/harshithgowdakt/granulemask/internal/report"
)

const (
	opSlice          = "slice"
	opTransform      = "transform"
	opSliceTransform = "slice_and_transform"
)

// demoCase is one built-in demonstration: a mask literal applied to a sample sequence.
type demoCase struct {
	op    string
	size  int
	flags []int
	fn    string
	data  []int
}

var demoCases = []demoCase{
	{op: opSlice, size: 3, flags: []int{1, 0, 0}, data: []int{1, 2, 3, 4, 5, 6, 7}},
	{op: opTransform, size: 4, flags: []int{0, 1, 1, 0}, fn: "double", data: []int{1, 2, 3, 4, 5, 6, 7}},
	{op: opSliceTransform, size: 3, flags: []int{1, 0, 1}, fn: "add5", data: []int{10, 20, 30, 40, 50}},
	{op: opSlice, size: 3, flags: []int{0, 0, 0}, data: []int{5, 10, 15, 20, 25}},
	{op: opTransform, size: 5, flags: []int{1, 1, 0, 0, 1}, fn: "square", data: []int{1, 2, 3, 4, 5, 6, 7}},
}

func main() {
	maskFlag := flag.String("mask", "", "Mask flags, e.g. 1,0,0 or 100 (empty runs the built-in demo)")
	dataFlag := flag.String("data", "", "Comma-separated integer sequence")
	opFlag := flag.String("op", opSlice, "Operation: slice, transform or slice_and_transform")
	fnFlag := flag.String("fn", "identity", "Transform: identity, double, square, negate, addK, mulK")
	formatFlag := flag.String("format", "plain", "Output format: plain, table, csv, markdown")
	codecFlag := flag.String("codec", "", "If set (lz4 or none), also print the encoded mask block in hex")
	flag.Parse()

	format := report.ParseFormat(*formatFlag)

	var results []report.Result
	if *maskFlag == "" {
		results = runDemo()
	} else {
		m, err := mask.Parse(*maskFlag)
		if err != nil {
			log.Printf("[demo] invalid -mask: %v", err)
			return
		}
		data, err := mask.ParseInts(*dataFlag)
		if err != nil {
			log.Printf("[demo] invalid -data: %v", err)
			return
		}
		results = []report.Result{apply(*opFlag, m, *fnFlag, data)}

		if *codecFlag != "" {
			if err := printEncoded(m, *codecFlag); err != nil {
				log.Printf("[demo] encode: %v", err)
			}
		}
	}

	for _, r := range results {
		if r.Err != nil {
			log.Printf("[demo] %s mask%s: %v", r.Op, r.Mask, r.Err)
		}
	}
	if err := report.Write(os.Stdout, results, format); err != nil {
		log.Printf("[demo] write results: %v", err)
	}
}

// runDemo executes the built-in demonstration cases.
func runDemo() []report.Result {
	results := make([]report.Result, 0, len(demoCases))
	for _, dc := range demoCases {
		m, err := mask.New(dc.size, dc.flags...)
		if err != nil {
			results = append(results, report.Result{Op: dc.op, Mask: fmt.Sprint(dc.flags), Input: dc.data, Err: err})
			continue
		}
		fn := dc.fn
		if fn == "" {
			fn = "identity"
		}
		results = append(results, apply(dc.op, m, fn, dc.data))
	}
	return results
}

// apply runs a single operation. data is never modified.
func apply(op string, m *mask.Mask, fnName string, data []int) report.Result {
	res := report.Result{Op: op, Mask: m.String(), Input: data}
	if op != opSlice {
		res.Func = fnName
	}

	switch op {
	case opSlice:
		out := make([]int, len(data))
		copy(out, data)
		m.Slice(&out)
		res.Output = out
	case opTransform, opSliceTransform:
		fn, err := mask.LookupFunc(fnName)
		if err != nil {
			res.Err = err
			return res
		}
		if op == opTransform {
			res.Output, res.Err = m.Transform(data, fn)
		} else {
			res.Output, res.Err = m.SliceAndTransform(data, fn)
		}
	default:
		res.Err = fmt.Errorf("%w: unknown operation %q", mask.ErrInvalidArgument, op)
	}
	return res
}

func printEncoded(m *mask.Mask, codecName string) error {
	codec, err := compression.ByName(codecName)
	if err != nil {
		return err
	}
	block, err := mask.Encode(m, codec)
	if err != nil {
		return err
	}
	fmt.Printf("encoded mask%s (%s, %d bytes): %s\n", m, codec.Name(), len(block), hex.EncodeToString(block))
	return nil
}
