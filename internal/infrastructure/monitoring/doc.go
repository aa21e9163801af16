/*
Package monitoring provides compile metrics collection.

# Overview

This package implements Prometheus-based metrics for a compiler run,
tracking package outcomes, written artifacts, generated windows and the
resolution path taken by every widget signal.

# Features

- Package metrics (outcome by kind, duration)
- Artifact metrics (count and bytes by kind)
- Generator metrics (windows, signals by canned/chooser/generic path)
- Textfile export for the node exporter

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Time a package
	timer := monitoring.NewTimer(metrics, "Application")
	// ... compile ...
	timer.Stop(types.ResultSuccess)

	// Export after the run
	metrics.WriteTextfile("build/compiler.prom")

Every collector is registered on a private registry, so several runs in
one process (tests) never collide on the default registerer.
*/
package monitoring
