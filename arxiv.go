package bibfmt

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// DefaultArxivURL is the arXiv API query endpoint.
const DefaultArxivURL = "http://export.arxiv.org/api/query"

const defaultMaxResults = 30

// ArxivQuery describes one arXiv API search. Each non-empty field is
// sent with its API prefix (ti: title, au: author, and so on); All
// searches every field. IDList restricts the search to a
// comma-separated list of arXiv identifiers.
type ArxivQuery struct {
	All          string
	Title        string
	Author       string
	Category     string
	Abstract     string
	Comment      string
	Journal      string
	ReportNumber string
	IDList       string

	// Page is the zero-based result offset; MaxResults defaults to 30.
	Page       int
	MaxResults int
}

// searchQuery renders the prefix:value terms joined with AND, in the
// API's documented prefix order.
func (q ArxivQuery) searchQuery() string {
	terms := []struct{ prefix, value string }{
		{"all", q.All},
		{"ti", q.Title},
		{"au", q.Author},
		{"cat", q.Category},
		{"abs", q.Abstract},
		{"co", q.Comment},
		{"jr", q.Journal},
		{"rn", q.ReportNumber},
	}
	var parts []string
	for _, t := range terms {
		if t.value != "" {
			parts = append(parts, t.prefix+":"+t.value)
		}
	}
	return strings.Join(parts, " AND ")
}

// ArxivClient queries the arXiv API and converts Atom entries into
// Documents suitable for citation keys and export.
type ArxivClient struct {
	// BaseURL defaults to DefaultArxivURL.
	BaseURL string
	// UserAgent is sent with every request.
	UserAgent string
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// NewArxivClient returns a client with default settings.
func NewArxivClient() *ArxivClient {
	return &ArxivClient{
		BaseURL:    DefaultArxivURL,
		UserAgent:  "bibfmt",
		HTTPClient: http.DefaultClient,
	}
}

// Search runs the query and returns one Document per matching record.
// An empty query (no search terms and no id list) is an error.
func (c *ArxivClient) Search(ctx context.Context, q ArxivQuery) ([]Document, error) {
	search := q.searchQuery()
	if search == "" && q.IDList == "" {
		return nil, fmt.Errorf("arxiv: empty query")
	}

	max := q.MaxResults
	if max <= 0 {
		max = defaultMaxResults
	}
	params := url.Values{}
	if search != "" {
		params.Set("search_query", search)
	}
	if q.IDList != "" {
		params.Set("id_list", q.IDList)
	}
	params.Set("start", strconv.Itoa(q.Page))
	params.Set("max_results", strconv.Itoa(max))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv query: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv query: unexpected status %s", resp.Status)
	}
	return ParseArxivFeed(resp.Body)
}

type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string        `xml:"id"`
	Published string        `xml:"published"`
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Authors   []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// ParseArxivFeed decodes an arXiv Atom feed into Documents.
func ParseArxivFeed(r io.Reader) ([]Document, error) {
	var feed arxivFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode arxiv feed: %w", err)
	}
	docs := make([]Document, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		docs = append(docs, entry.document())
	}
	return docs, nil
}

// document maps one Atom entry to the record fields the rest of the
// package consumes: the year comes from the published timestamp, and
// author names are split into family/given pairs so citation keys work.
func (e arxivEntry) document() Document {
	doc := Document{
		"url":      strings.TrimSpace(e.ID),
		"title":    unfold(e.Title),
		"abstract": unfold(e.Summary),
	}
	if published := strings.TrimSpace(e.Published); published != "" {
		doc["published"] = published
		if len(published) >= 4 {
			doc["year"] = published[:4]
		}
	}
	names := make([]string, 0, len(e.Authors))
	authors := make([]any, 0, len(e.Authors))
	for _, a := range e.Authors {
		name := unfold(a.Name)
		if name == "" {
			continue
		}
		names = append(names, name)
		authors = append(authors, splitAuthorName(name))
	}
	if len(names) > 0 {
		doc["author"] = strings.Join(names, ", ")
		doc["author_list"] = authors
	}
	return doc
}

// unfold collapses the feed's wrapped text onto one line.
func unfold(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// splitAuthorName treats the last whitespace-separated token as the
// family name and the rest as given names.
func splitAuthorName(name string) Document {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return Document{"family": name}
	}
	return Document{
		"family": fields[len(fields)-1],
		"given":  strings.Join(fields[:len(fields)-1], " "),
	}
}

// arxividPattern matches arXiv identifiers in free text, including the
// javascript-embedded forms found in landing pages.
var arxividPattern = regexp.MustCompile(
	`(?i)arxiv(\.org|\.com)?(/abs|/pdf)?\s*(=|:|/|\()\s*("|')?([^"\\()\s%!$^'<>@,;:#?&]+)`)

// FindArxivID extracts the first arXiv identifier found in text, or ""
// when there is none.
func FindArxivID(text string) string {
	m := arxividPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[5]
}
