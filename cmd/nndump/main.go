// Copyright 2025 Android NN Driver Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// nndump renders a raw tensor buffer as the same human-readable dump
// artifact the driver writes for request inputs and outputs, optionally
// swizzling the tensor into another memory layout first.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SheriZhang/android-nn-driver/driver"
)

var (
	inputPath   string
	shapeArg    string
	dtypeArg    string
	permuteArg  string
	outDir      string
	requestName string
	tensorName  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nndump",
		Short: "nndump renders raw tensor buffers as dump files",
		Long: `nndump reads a raw little-endian tensor buffer, interprets it with the
given shape and element type, and writes the driver's textual dump artifact
(<out-dir>/<request>_<tensor>.dump). With --permute the tensor is swizzled
into the permuted layout before dumping.`,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Raw tensor buffer to read")
	rootCmd.Flags().StringVarP(&shapeArg, "shape", "s", "", "Tensor shape, e.g. 1,2,2,3")
	rootCmd.Flags().StringVarP(&dtypeArg, "dtype", "d", "float32", "Element type: float32, quant8, int32")
	rootCmd.Flags().StringVarP(&permuteArg, "permute", "p", "", "Permutation vector applied before dumping, e.g. 0,3,1,2")
	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "Directory the dump is written into (must exist)")
	rootCmd.Flags().StringVar(&requestName, "request", "nndump", "Request name used in the file name")
	rootCmd.Flags().StringVar(&tensorName, "tensor", "tensor", "Tensor name used in the file name")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("shape")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	shape, err := parseShape(shapeArg)
	if err != nil {
		return err
	}

	dtype, err := parseDType(dtypeArg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	view, err := driver.NewView(driver.NewInfo(shape, dtype), data)
	if err != nil {
		return err
	}

	if permuteArg != "" {
		vector, err := parseVector(permuteArg)
		if err != nil {
			return err
		}
		view, err = driver.Permute(view, vector, make([]byte, view.ByteSize()))
		if err != nil {
			return err
		}
	}

	dumper := driver.NewDumper(outDir, nil)
	if err := dumper.DumpTensor(requestName, tensorName, view); err != nil {
		return err
	}

	fmt.Println(dumper.TensorFilePath(requestName, tensorName))
	return nil
}

func parseShape(arg string) (driver.Shape, error) {
	dims, err := parseInts(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid shape %q: %w", arg, err)
	}
	return driver.Shape(dims), nil
}

func parseVector(arg string) (driver.PermutationVector, error) {
	axes, err := parseInts(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid permutation %q: %w", arg, err)
	}
	return driver.PermutationVector(axes), nil
}

func parseInts(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseDType(arg string) (driver.DataType, error) {
	switch arg {
	case "float32":
		return driver.Float32, nil
	case "quant8":
		return driver.QuantizedAsymm8, nil
	case "int32":
		return driver.Signed32, nil
	default:
		return 0, fmt.Errorf("unknown element type %q (want float32, quant8, or int32)", arg)
	}
}
