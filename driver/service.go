// Copyright 2025 Android NN Driver Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package driver

import (
	"go.uber.org/zap"

	"github.com/SheriZhang/android-nn-driver/internal/config"
	"github.com/SheriZhang/android-nn-driver/internal/dump"
	"github.com/SheriZhang/android-nn-driver/internal/graph"
)

// Options are the driver's diagnostic settings.
type Options = config.Options

// OptionsFromEnv loads Options from NN_DRIVER_* environment variables.
func OptionsFromEnv() (Options, error) {
	return config.FromEnv()
}

// Service ties the driver's diagnostic settings to the dump and graph
// writers. Dump failures are logged and swallowed here: diagnostics never
// abort the primary path, while permutation and operand-translation errors
// always propagate to the caller.
type Service struct {
	opts   Options
	log    *zap.Logger
	dumper *dump.Dumper
}

// NewService builds a Service from explicit options. A nil logger is
// replaced with a no-op logger.
func NewService(opts Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		opts:   opts,
		log:    log,
		dumper: dump.New(opts.DumpDir, log),
	}
}

// NewServiceFromEnv builds a Service from NN_DRIVER_* environment
// variables.
func NewServiceFromEnv() (*Service, error) {
	opts, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return NewService(opts, config.NewLogger(opts.VerboseLogging)), nil
}

// Options returns the service's settings.
func (s *Service) Options() Options {
	return s.opts
}

// DumpRequestTensor writes one request tensor dump if tensor dumping is
// enabled. Failures are logged, never returned.
func (s *Service) DumpRequestTensor(requestName, tensorName string, view *View) {
	if !s.opts.DumpTensors {
		return
	}
	if err := s.dumper.DumpTensor(requestName, tensorName, view); err != nil {
		s.log.Warn("could not dump tensor",
			zap.String("request", requestName),
			zap.String("tensor", tensorName),
			zap.Error(err))
	}
}

// ExportNetworkGraph writes the model's operation graph if graph export is
// enabled. Failures are logged, never returned.
func (s *Service) ExportNetworkGraph(model *Model) {
	if !s.opts.DumpGraph {
		return
	}
	if err := s.dumper.ExportGraph(graph.NewModelGraph(model), model); err != nil {
		s.log.Warn("could not export network graph", zap.Error(err))
	}
}
