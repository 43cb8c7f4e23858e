// Package run drives the import sequence: locate the booted simulator,
// then for every catalog item download, import, and clean up, carrying
// per-item failures without aborting the run.
package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/bahaa0627-dev/wanderlog/internal/catalog"
	"github.com/bahaa0627-dev/wanderlog/internal/fetch"
	"github.com/bahaa0627-dev/wanderlog/internal/simctl"
)

// Runner coordinates one full import run.
type Runner struct {
	Source  simctl.Source
	Fetcher *fetch.Fetcher
	Catalog catalog.Catalog
	// Dir is the temporary working directory for downloaded files.
	Dir string
	// DeviceUDID, when set, skips booted-device detection.
	DeviceUDID string
	// Out receives progress output. Nil means os.Stdout.
	Out io.Writer
}

// Report summarizes a completed run.
type Report struct {
	Imported   int
	Downloaded int
	Total      int
	Bytes      int64
	Failures   []string
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// Run executes the full sequence. Only device lookup failures are
// returned as errors; download and import failures are reported inline
// and the run continues.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{Total: r.Catalog.Total()}
	out := r.out()

	udid := r.DeviceUDID
	if udid == "" {
		devices, err := r.Source.ListDevices(ctx)
		if err != nil {
			return report, fmt.Errorf("list devices: %w", err)
		}
		booted, err := simctl.BootedDevice(devices)
		if err != nil {
			return report, err
		}
		udid = booted.UDID
		fmt.Fprintf(out, "%s Found simulator: %s (%s)\n\n", okMark(), booted.Name, booted.UDID)
	}

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return report, fmt.Errorf("create working dir %s: %w", r.Dir, err)
	}

	for _, cat := range r.Catalog {
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Processing %s images...", cat.Name)))
		for i, url := range cat.URLs {
			name := catalog.Filename(cat.Name, i+1)
			dest := filepath.Join(r.Dir, name)

			if err := r.Fetcher.Fetch(ctx, url, dest); err != nil {
				fmt.Fprintf(out, "  %s [%d/%d] download failed: %v\n", failMark(), i+1, len(cat.URLs), err)
				report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", name, err))
				continue
			}
			report.Downloaded++
			if info, err := os.Stat(dest); err == nil {
				report.Bytes += info.Size()
			}

			if err := r.Source.AddMedia(ctx, udid, dest); err != nil {
				fmt.Fprintf(out, "  %s [%d/%d] import failed: %v\n", failMark(), i+1, len(cat.URLs), err)
				report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", name, err))
			} else {
				report.Imported++
				fmt.Fprintf(out, "  %s [%d/%d] imported %s\n", okMark(), i+1, len(cat.URLs), name)
			}

			// The file is done with whether or not the import succeeded.
			os.Remove(dest)
		}
		fmt.Fprintln(out)
	}

	// Best-effort; fails harmlessly if anything was left behind.
	os.Remove(r.Dir)

	fmt.Fprintf(out, "Done! Imported %d/%d images.\n", report.Imported, report.Total)
	if report.Bytes > 0 {
		fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf("%s downloaded in total", humanize.Bytes(uint64(report.Bytes)))))
	}
	if len(report.Failures) > 0 {
		fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf("%d items failed", len(report.Failures))))
	}
	return report, nil
}
