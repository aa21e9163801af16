// Package lingua aggregates per-language titles and descriptions into the
// localization table embedded in generated client modules.
package lingua
