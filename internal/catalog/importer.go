package catalog

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"skillpath/internal/pkg/workerpool"
	"skillpath/internal/repository"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
)

// Config controls one import run against a provider's course site.
type Config struct {
	Provider string
	BaseURL  string
	Pages    int
	Workers  int
	// RateLimit caps detail fetches per second across all workers.
	RateLimit int
	// CreateMissingSkills registers unmatched tags as technical skills
	// instead of dropping them.
	CreateMissingSkills bool
}

// Importer crawls a provider's course listing, resolves tags to catalog
// skills and upserts courses with their skill rows.
type Importer struct {
	courses  repository.CourseRepository
	resolver *SkillResolver
	logger   *log.Logger

	provider    string
	baseURL     string
	allowedHost string
	rateLimit   int
}

func NewImporter(courses repository.CourseRepository, skills repository.SkillRepository, logger *log.Logger, cfg Config) (*Importer, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("empty provider base URL")
	}
	host, err := hostFromBaseURL(base)
	if err != nil {
		return nil, err
	}
	provider := strings.TrimSpace(cfg.Provider)
	if provider == "" {
		provider = host
	}
	rate := cfg.RateLimit
	if rate <= 0 {
		rate = 4
	}

	return &Importer{
		courses:     courses,
		resolver:    NewSkillResolver(skills, cfg.CreateMissingSkills),
		logger:      logger,
		provider:    provider,
		baseURL:     base,
		allowedHost: host,
		rateLimit:   rate,
	}, nil
}

type RunReport struct {
	Imported int
	Failed   int
}

func (imp *Importer) Run(ctx context.Context, pages, workers int) (RunReport, error) {
	if imp == nil || imp.courses == nil {
		return RunReport{}, fmt.Errorf("nil importer")
	}
	if pages <= 0 {
		pages = 1
	}
	if workers <= 0 {
		workers = 4
	}

	pool := workerpool.New(workers, workers*2)
	pool.SetRateLimit(imp.rateLimit)
	results := pool.Run(ctx)

	// Listing pages are crawled from a separate goroutine while results
	// are drained below, so a full result buffer never wedges submission.
	go func() {
		defer pool.Close()
		for page := 1; page <= pages; page++ {
			links, err := imp.fetchListingPage(ctx, page)
			if err != nil || len(links) == 0 {
				// JS-rendered listing; retry with a real browser.
				links, err = imp.fetchListingHeadless(ctx, page)
			}
			if err != nil {
				imp.logf("catalog listing page %d: %v", page, err)
				continue
			}
			for _, link := range links {
				link := link
				if !pool.Submit(ctx, func(ctx context.Context) error {
					return imp.importCourse(ctx, link)
				}) {
					return
				}
			}
		}
	}()

	var report RunReport
	for res := range results {
		if res.Err != nil {
			report.Failed++
			imp.logf("catalog course: %v", res.Err)
			continue
		}
		report.Imported++
	}
	return report, nil
}

func (imp *Importer) importCourse(ctx context.Context, link string) error {
	detail, err := imp.scrapeCourseDetail(ctx, link)
	if err != nil {
		return err
	}
	if strings.TrimSpace(detail.title) == "" {
		return fmt.Errorf("no title at %s", link)
	}

	skills, err := imp.resolver.Resolve(ctx, detail.tags)
	if err != nil {
		return err
	}

	level := levelGained(detail.level)
	skillLevels := make(map[uuid.UUID]int, len(skills))
	for _, s := range skills {
		skillLevels[s.ID] = level
	}

	_, err = imp.courses.UpsertCourse(ctx, repository.CourseUpsert{
		Provider:    imp.provider,
		ExternalID:  externalIDFromURL(link),
		Title:       detail.title,
		Description: detail.description,
		URL:         link,
		Rating:      detail.rating,
		Skills:      skillLevels,
	})
	return err
}

func (imp *Importer) fetchListingPage(ctx context.Context, page int) ([]string, error) {
	listURL := fmt.Sprintf("%s/courses?page=%d", imp.baseURL, page)

	c := colly.NewCollector(
		colly.AllowedDomains(imp.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 750 * time.Millisecond})

	links := make([]string, 0)
	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/course/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		links = append(links, abs)
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	return dedupLinks(links), nil
}

type courseDetail struct {
	title       string
	description string
	level       string
	rating      float64
	tags        []string
}

func (imp *Importer) scrapeCourseDetail(ctx context.Context, courseURL string) (courseDetail, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(imp.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond, RandomDelay: 850 * time.Millisecond})

	var out courseDetail
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.title == "" {
			out.title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if out.title == "" {
			out.title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		if out.description == "" {
			out.description = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML(`[itemprop="ratingValue"]`, func(e *colly.HTMLElement) {
		out.rating = parseRating(pickNonEmpty(e.Attr("content"), e.Text))
	})
	c.OnHTML(`[data-level], .course-level`, func(e *colly.HTMLElement) {
		out.level = pickNonEmpty(e.Attr("data-level"), e.Text)
	})
	c.OnHTML(`a[rel="tag"], .tag, .skill-tag`, func(e *colly.HTMLElement) {
		t := strings.TrimSpace(e.Text)
		if t != "" {
			out.tags = append(out.tags, t)
		}
	})
	c.OnHTML(`meta[name="keywords"]`, func(e *colly.HTMLElement) {
		for _, t := range strings.Split(e.Attr("content"), ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				out.tags = append(out.tags, t)
			}
		}
	})

	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return courseDetail{}, ctx.Err()
	}
	if err := c.Visit(courseURL); err != nil {
		return courseDetail{}, err
	}
	c.Wait()
	if reqErr != nil {
		return courseDetail{}, reqErr
	}
	return out, nil
}

func (imp *Importer) logf(format string, args ...any) {
	if imp != nil && imp.logger != nil {
		imp.logger.Printf(format, args...)
	}
}

// levelGained maps a provider's difficulty label to the level a completed
// course grants. Unlabeled courses count as intermediate.
func levelGained(label string) int {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "beginner", "introductory", "basic":
		return 2
	case "advanced", "expert":
		return 4
	default:
		return 3
	}
}

func parseRating(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

func externalIDFromURL(courseURL string) string {
	courseURL = strings.TrimSpace(courseURL)
	u, err := url.Parse(courseURL)
	if err == nil {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) > 0 {
			last := strings.TrimSpace(parts[len(parts)-1])
			if last != "" {
				return last
			}
		}
	}
	return courseURL
}

func dedupLinks(links []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, l := range links {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "SkillPathCatalog/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func hostFromBaseURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	host := u.Host
	if host == "" {
		return "", fmt.Errorf("no host in base URL %q", base)
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h, nil
	}
	return host, nil
}
