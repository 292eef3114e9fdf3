package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CourseInfo is the slice of a catalog course the ledger service needs:
// pricing and the curriculum outline for progress math.
type CourseInfo struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Price         decimal.Decimal   `json:"price"`
	DiscountPrice *decimal.Decimal  `json:"discount_price"`
	Curriculum    CurriculumOutline `json:"curriculum"`
}

type CurriculumOutline struct {
	Sections []SectionOutline `json:"sections"`
}

type SectionOutline struct {
	Lessons []LessonRef `json:"lessons"`
}

type LessonRef struct {
	ID string `json:"id"`
}

func (c CourseInfo) EffectivePrice() decimal.Decimal {
	if c.DiscountPrice != nil {
		return *c.DiscountPrice
	}
	return c.Price
}

func (c CourseInfo) LessonCount() int {
	n := 0
	for _, s := range c.Curriculum.Sections {
		n += len(s.Lessons)
	}
	return n
}

var (
	ErrCourseNotFound     = errors.New("catalog course not found")
	ErrCatalogBadStatus   = errors.New("catalog bad status")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// CourseSource is how the ledger service reaches the catalog.
type CourseSource interface {
	GetCourse(ctx context.Context, id string) (CourseInfo, error)
}

type CatalogClient struct {
	BaseURL string
	Client  *http.Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &CatalogClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *CatalogClient) GetCourse(ctx context.Context, id string) (CourseInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/courses/%s", c.BaseURL, url.PathEscape(id)), nil)
	if err != nil {
		return CourseInfo{}, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return CourseInfo{}, ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return CourseInfo{}, ErrCourseNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return CourseInfo{}, fmt.Errorf("%w: status=%d", ErrCatalogBadStatus, resp.StatusCode)
	}

	var info CourseInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return CourseInfo{}, err
	}
	return info, nil
}

// PriceVia adapts a CourseSource into the PriceFunc the ledger's total
// uses: unknown courses price as absent, outages surface as errors.
func PriceVia(src CourseSource) PriceFunc {
	return func(ctx context.Context, id string) (decimal.Decimal, bool, error) {
		info, err := src.GetCourse(ctx, id)
		if errors.Is(err, ErrCourseNotFound) {
			return decimal.Zero, false, nil
		}
		if err != nil {
			return decimal.Zero, false, err
		}
		return info.EffectivePrice(), true, nil
	}
}
