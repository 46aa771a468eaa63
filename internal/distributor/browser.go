package distributor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minRenderedLength is the minimum body length to consider an HTTP fetch
// usable. Shorter bodies usually mean a JavaScript-rendered listing page.
const minRenderedLength = 500

// tooShortForExtraction reports whether a fetched body is likely an empty
// SPA shell that needs browser rendering before extraction.
func tooShortForExtraction(body string) bool {
	return len(strings.TrimSpace(body)) < minRenderedLength
}

// fetchRendered loads a page in a headless browser and returns the rendered
// HTML. Requires Chrome/Chromium on the system.
func fetchRendered(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give product grids a moment to populate
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
