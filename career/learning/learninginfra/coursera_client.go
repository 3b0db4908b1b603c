package learninginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/careergist/careergist/career/learning"
)

const (
	defaultCourseraBaseURL = "https://api.coursera.org/api/courses.v1"
	courseraPlatform       = "Coursera"

	// courses with shorter descriptions are placeholder entries
	minDescriptionLength = 40
)

// CourseraClient searches the public Coursera course catalog
type CourseraClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCourseraClient creates a new Coursera catalog client
func NewCourseraClient() *CourseraClient {
	return &CourseraClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultCourseraBaseURL,
	}
}

type courseraElement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type courseraResponse struct {
	Elements []courseraElement `json:"elements"`
}

// Search queries the catalog and maps usable results. Entries without an
// ID or slug cannot be linked and are dropped, as are entries with
// placeholder descriptions.
func (c *CourseraClient) Search(ctx context.Context, query string, limit int) ([]learning.Course, error) {
	params := url.Values{
		"q":      {"search"},
		"query":  {query},
		"limit":  {strconv.Itoa(limit)},
		"fields": {"id,name,slug,description"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, learning.ErrProviderUnavailable().WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, learning.ErrProviderUnavailable().WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, learning.ErrProviderUnavailable().
			WithDetail("status", fmt.Sprintf("%d", resp.StatusCode))
	}

	var payload courseraResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, learning.ErrProviderUnavailable().WithCause(err)
	}

	courses := make([]learning.Course, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		if el.ID == "" || el.Slug == "" {
			continue
		}
		description := strings.TrimSpace(el.Description)
		if len(description) <= minDescriptionLength {
			continue
		}
		courses = append(courses, learning.Course{
			ID:          el.ID,
			Title:       el.Name,
			Description: description,
			URL:         fmt.Sprintf("https://www.coursera.org/learn/%s", el.Slug),
			Platform:    courseraPlatform,
		})
	}
	return courses, nil
}
