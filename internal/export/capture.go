package export

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resumebuilder-backend/internal/shared/metrics"
)

// ErrCaptureFailed wraps every rasterization failure so callers can tell
// a capture problem apart from storage or persistence errors.
var ErrCaptureFailed = errors.New("export: capture failed")

// Rasterizer turns a rendered HTML document into image or PDF bytes.
// Handlers depend on the interface so tests can inject a fake instead of
// spawning a browser.
type Rasterizer interface {
	Capture(ctx context.Context, html string) (string, error)
	PDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRasterizer drives a headless Chrome instance over the DevTools
// protocol. ChromePath overrides the binary location; empty means let
// chromedp find one.
type ChromeRasterizer struct {
	ChromePath string
	Timeout    time.Duration
}

// NewChromeRasterizer constructs a ChromeRasterizer with a 60s budget
// per capture.
func NewChromeRasterizer(chromePath string) *ChromeRasterizer {
	return &ChromeRasterizer{ChromePath: chromePath, Timeout: 60 * time.Second}
}

// Capture rasterizes the document to PNG and returns it as a
// data:image/png;base64 URI, the shape the thumbnail endpoint stores.
func (r *ChromeRasterizer) Capture(ctx context.Context, html string) (string, error) {
	var shot []byte
	err := r.run(ctx, html, chromedp.FullScreenshot(&shot, 90))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(shot), nil
}

// PDF prints the document to an A4 PDF with backgrounds enabled.
func (r *ChromeRasterizer) PDF(ctx context.Context, html string) ([]byte, error) {
	var pdf []byte
	err := r.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		// A4: 210mm x 297mm -> inches
		pdf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(8.27).
			WithPaperHeight(11.69).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return pdf, nil
}

func (r *ChromeRasterizer) run(ctx context.Context, html string, action chromedp.Action) error {
	metrics.IncCaptureStarted()
	started := time.Now()
	err := r.runChrome(ctx, html, action)
	metrics.ObserveCaptureDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncCaptureFailed()
		return err
	}
	metrics.IncCaptureCompleted()
	return nil
}

func (r *ChromeRasterizer) runChrome(ctx context.Context, html string, action chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	// Chrome refuses data: navigation for large documents, so the page
	// is served from a temp file instead.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return err
	}

	return chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		action,
	)
}
