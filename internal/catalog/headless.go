package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchListingHeadless renders the listing page in headless Chrome and
// pulls course links out of the DOM. Used when the static fetch finds
// nothing, which means the listing is built client-side.
func (imp *Importer) fetchListingHeadless(ctx context.Context, page int) ([]string, error) {
	if imp == nil {
		return nil, fmt.Errorf("nil importer")
	}

	listURL := fmt.Sprintf("%s/courses?page=%d", imp.baseURL, page)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(listURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href]'))
			.map(a => a.getAttribute('href'))
			.filter(h => h && h.includes('/course/'))`, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	links := make([]string, 0, len(hrefs))
	for _, h := range hrefs {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if strings.HasPrefix(h, "/") {
			h = imp.baseURL + h
		} else if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
			h = imp.baseURL + "/" + h
		}
		links = append(links, h)
	}

	links = dedupLinks(links)
	if len(links) == 0 {
		return nil, fmt.Errorf("no course urls found (headless)")
	}
	return links, nil
}
