package listings

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/internship-matcher/internal/types"
)

// fetchTimeout bounds a single catalog page fetch.
const fetchTimeout = 30 * time.Second

// HTMLSource fetches a listing catalog published as an HTML page. Each listing
// is an <article class="listing"> card with .title, .company, .location,
// .description, .skills li and .compensation children, the export format used
// by partner portals.
type HTMLSource struct {
	URL    string
	client *http.Client
}

// NewHTMLSource creates an HTMLSource for the given catalog URL.
func NewHTMLSource(url string) *HTMLSource {
	return &HTMLSource{
		URL:    url,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// FetchCandidates downloads and parses the catalog page. Transport failures
// and non-2xx responses surface as SourceUnavailableError so the caller can
// apply its retry policy.
func (s *HTMLSource) FetchCandidates(ctx context.Context, _ types.StudentProfile) ([]types.InternshipListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &CatalogError{Message: "invalid catalog URL " + s.URL, Cause: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SourceUnavailableError{Source: s.URL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SourceUnavailableError{
			Source: s.URL,
			Cause:  fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SourceUnavailableError{Source: s.URL, Cause: err}
	}

	return ParseCatalogHTML(string(body))
}

// ParseCatalogHTML extracts listings from a catalog HTML document.
func ParseCatalogHTML(htmlContent string) ([]types.InternshipListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &CatalogError{Message: "failed to parse catalog HTML", Cause: err}
	}

	pool := make([]types.InternshipListing, 0)
	doc.Find("article.listing").Each(func(_ int, card *goquery.Selection) {
		listing := types.InternshipListing{
			CompanyName:  text(card, ".company"),
			Title:        text(card, ".title"),
			Location:     text(card, ".location"),
			Description:  text(card, ".description"),
			Compensation: text(card, ".compensation"),
		}
		card.Find(".skills li").Each(func(_ int, li *goquery.Selection) {
			if skill := strings.TrimSpace(li.Text()); skill != "" {
				listing.RequiredSkills = append(listing.RequiredSkills, skill)
			}
		})
		// Cards without a company and title are navigation chrome, not listings.
		if listing.CompanyName == "" && listing.Title == "" {
			return
		}
		pool = append(pool, listing)
	})

	return Dedupe(pool), nil
}

func text(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}
