package metrics

import (
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/push"
)

var (
    fontsFound = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "fonts_found_total",
            Help:      "Total font files discovered by upload scans",
        },
    )

    fontsCopied = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "fonts_copied_total",
            Help:      "Total font files copied into Fonts directories",
        },
    )

    fontsSkipped = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "fonts_skipped_total",
            Help:      "Fonts skipped because the destination name already existed",
        },
    )

    copyFailures = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "font_copy_failures_total",
            Help:      "Font copy attempts that failed",
        },
    )

    scanErrors = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "scan_access_errors_total",
            Help:      "Directory entries skipped during scans due to access errors",
        },
    )

    cleanupDeleted = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "cleanup_files_deleted_total",
            Help:      "Temp artifacts deleted by cleanup runs",
        },
    )

    cleanupFailures = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "cleanup_failures_total",
            Help:      "Cleanup deletions that failed",
        },
    )

    runsTotal = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "idmltools",
            Name:      "runs_total",
            Help:      "Tool runs by tool name and result",
        },
        []string{"tool", "result"},
    )

    runDuration = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "idmltools",
            Name:      "run_duration_seconds",
            Help:      "Duration of tool runs by tool name",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"tool"},
    )
)

// Init registers collectors.
func Init() {
    prometheus.MustRegister(fontsFound, fontsCopied, fontsSkipped, copyFailures, scanErrors, cleanupDeleted, cleanupFailures, runsTotal, runDuration)
}

func AddFontsFound(n int)  { fontsFound.Add(float64(n)) }
func IncFontCopied()       { fontsCopied.Inc() }
func IncFontSkipped()      { fontsSkipped.Inc() }
func IncFontCopyFailure()  { copyFailures.Inc() }
func IncScanAccessError()  { scanErrors.Inc() }
func IncCleanupDeleted()   { cleanupDeleted.Inc() }
func IncCleanupFailure()   { cleanupFailures.Inc() }

func ObserveRun(tool, result string, dur time.Duration) {
    runsTotal.WithLabelValues(tool, result).Inc()
    runDuration.WithLabelValues(tool).Observe(dur.Seconds())
}

// Push delivers collected metrics to a Pushgateway. The tools are one-shot
// processes with no scrape endpoint, so this runs once at the end of a run.
// An empty URL disables delivery.
func Push(url, job string) error {
    if url == "" {
        return nil
    }
    return push.New(url, job).Gatherer(prometheus.DefaultGatherer).Push()
}
