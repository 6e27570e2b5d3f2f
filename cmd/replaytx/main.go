// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/sdrreplay/replaytx/config"
	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/dataset/tabular"
	"github.com/sdrreplay/replaytx/device"
	"github.com/sdrreplay/replaytx/dump"
	"github.com/sdrreplay/replaytx/hal"
	"github.com/sdrreplay/replaytx/helpers/parse"
	"github.com/sdrreplay/replaytx/modulation"
	"github.com/sdrreplay/replaytx/transport"
)

func replaytx() error {
	flags := flag.NewFlagSet("replaytx", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), strings.TrimSpace(`
Usage: replaytx [FLAGS] <datasetPath>

replaytx loads one (modulation, SNR) signal from an RF modulation
dataset and transmits it through whichever transmit-capable front end
is present at the given transport context.

Arguments:
  datasetPath
	Path to the dataset file. Its on-disk layout is selected with
	-kind.

Flags:
`,
		))
		flags.PrintDefaults()
	}
	kindOpt := flags.String("kind", "tabular", "Dataset layout: tabular, tuple, or hier. Only tabular is fully supported in this build; tuple and hier require an external decoder.")
	modOpt := flags.String("mod", "", "Modulation alias to transmit, e.g. BPSK.")
	snrOpt := flags.Int("snr", 0, "SNR in dB to transmit.")
	uriOpt := flags.String("uri", "local:", "Transport context URI. This build's sysfs attribute bus accepts only local:.")
	profileOpt := flags.String("profile", "", "Optional path to a YAML profile file; a profile whose uri matches -uri is applied after Select.")
	dumpOpt := flags.String("dump", "", "Optional path to dump the first two frames of the selected signal instead of transmitting.")
	dumpFormatOpt := flags.String("dump-format", "text", "Dump file format: text or wav.")
	maxSlabOpt := flags.String("max-slab-bytes", "0", "Reject the parse before it allocates a hierarchical-scientific slab larger than this many bytes. 0 disables the check.")

	_ = flags.Parse(os.Args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		return errors.New("expected exactly one dataset path argument")
	}
	datasetPath := flags.Arg(0)

	if *modOpt == "" {
		return errors.New("-mod is required")
	}
	modName := modulation.Lookup(*modOpt)
	if modName == modulation.Unknown {
		return fmt.Errorf("unrecognized modulation alias %q", *modOpt)
	}

	maxSlabBytes, err := parse.SizeInBytes(*maxSlabOpt)
	if err != nil {
		return fmt.Errorf("-max-slab-bytes: %w", err)
	}

	kind, store, err := parseDataset(*kindOpt, datasetPath, maxSlabBytes)
	if err != nil {
		return err
	}

	sd, ok := store.Lookup(dataset.Key{Modulation: modName, SnrDb: *snrOpt})
	if !ok {
		return fmt.Errorf("dataset has no entry for modulation %s, snr %ddB", modName, *snrOpt)
	}
	slog.Info("loaded signal", "kind", kind, "modulation", modName, "snrDb", *snrOpt, "frames", len(sd.Frames))

	if *dumpOpt != "" {
		return dumpSignal(*dumpOpt, *dumpFormatOpt, kind, modName, *snrOpt, sd)
	}

	h, err := hal.New(hal.WithBusFactory(func() device.AttributeBus { return transport.NewSysfsBus() }))
	if err != nil {
		return err
	}

	if err := h.Select(*uriOpt); err != nil {
		return fmt.Errorf("select %s: %w", *uriOpt, err)
	}
	slog.Info("selected transmit context", "uri", h.ActiveURI())

	if *profileOpt != "" {
		if err := applyProfile(h, *profileOpt, *uriOpt); err != nil {
			return err
		}
	}

	if err := h.ApplySamplingRatePolicy(dataset.ConstantsFor(kind).FrameLength); err != nil {
		return fmt.Errorf("apply sampling rate policy: %w", err)
	}

	if err := h.LoadSignal(sd); err != nil {
		return fmt.Errorf("load signal: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		v, ok := <-sig
		if ok {
			slog.Info("signal received, stopping", "signal", v)
			cancel()
		}
	}()

	if err := h.StartStreaming(); err != nil {
		return fmt.Errorf("start streaming: %w", err)
	}
	slog.Info("streaming started; press ctrl-c to stop")
	<-ctx.Done()

	if err := h.StopStreaming(); err != nil {
		return fmt.Errorf("stop streaming: %w", err)
	}
	slog.Info("streaming stopped")
	return nil
}

// parseDataset dispatches on kind, returning the resulting dataset.Kind
// and Store. Only tabular is implemented end to end: tuple and hier
// both need a dataset.tuple.Decoder or dataset.hier.Decoder supplied by
// the deployment, and no concrete implementation ships in this build.
func parseDataset(kindArg, path string, maxSlabBytes uint64) (dataset.Kind, *dataset.Store, error) {
	switch kindArg {
	case "tabular":
		fp, err := os.Open(path)
		if err != nil {
			return 0, nil, fmt.Errorf("open dataset: %w", err)
		}
		defer fp.Close()
		store, err := tabular.Parse(fp)
		if err != nil {
			return 0, nil, fmt.Errorf("parse dataset: %w", err)
		}
		return dataset.TextTabular, store, nil
	case "tuple":
		return 0, nil, errors.New("kind tuple requires an external dataset.tuple.Decoder; not implemented in this build")
	case "hier":
		if maxSlabBytes > 0 {
			constants := dataset.ConstantsFor(dataset.HierarchicalScientific)
			slabBytes := uint64(constants.FrameLength) * uint64(constants.FramesPerCombo) * uint64(constants.SnrsNr) * 2 * 4
			if slabBytes > maxSlabBytes {
				return 0, nil, fmt.Errorf("%w: one modulation slab is %d bytes, exceeds -max-slab-bytes=%d", errSlabTooLarge, slabBytes, maxSlabBytes)
			}
		}
		return 0, nil, errors.New("kind hier requires an external dataset.hier.Decoder; not implemented in this build")
	default:
		return 0, nil, fmt.Errorf("unknown -kind %q: want tabular, tuple, or hier", kindArg)
	}
}

var errSlabTooLarge = errors.New("hierarchical slab too large")

func applyProfile(h *hal.HAL, path, uri string) error {
	f, err := config.ParseFile(path)
	if err != nil {
		return err
	}
	profile, ok := f.Find(uri)
	if !ok {
		slog.Info("no profile matches active uri, skipping", "uri", uri, "profile", path)
		return nil
	}
	if err := config.Apply(h, profile); err != nil {
		return fmt.Errorf("apply profile %s: %w", profile.Name, err)
	}
	slog.Info("applied profile", "name", profile.Name, "uri", uri)
	return nil
}

func dumpSignal(path, format string, kind dataset.Kind, modName modulation.Name, snrDb int, sd dataset.SignalData) error {
	name := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		defaultName := dump.DefaultFilename(kind, modName, snrDb)
		if format == "wav" {
			defaultName = strings.TrimSuffix(defaultName, ".txt") + ".wav"
		}
		name = path + string(os.PathSeparator) + defaultName
	}
	fp, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer fp.Close()

	var n int
	switch format {
	case "text":
		write := dump.NewWrite()
		n, err = write(fp, sd)
	case "wav":
		sampleRateHz := uint32(hal.SamplingRateForFrameLength(dataset.ConstantsFor(kind).FrameLength))
		err = dump.NewWriteWav(16)(fp, sampleRateHz, sd)
	default:
		return fmt.Errorf("unknown -dump-format %q: want text or wav", format)
	}
	if err != nil {
		return err
	}
	slog.Info("dumped signal", "path", name, "samples", n)
	return nil
}

func main() {
	if err := replaytx(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
