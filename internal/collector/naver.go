package collector

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	naverNewsURL = "https://openapi.naver.com/v1/search/news.json"
	// Naver 开放平台的 display 参数上限
	naverMaxDisplay = 100

	searchClientTimeout = 10 * time.Second
)

// ErrMissingCredentials 表示 Naver 凭据未配置，调用方不应发起网络请求
var ErrMissingCredentials = errors.New("naver credentials not configured (check NAVER_CLIENT_ID / NAVER_CLIENT_SECRET)")

// UpstreamError 保留 Naver 搜索接口返回的原始状态码和响应体
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("naver search: upstream status %d: %s", e.StatusCode, e.Body)
}

// SearchResult 是返回给客户端的搜索结果
type SearchResult struct {
	Keyword  string    `json:"keyword"`
	Count    int       `json:"count"`
	Articles []Article `json:"articles"`
}

// Article 是单条新闻的摘要形态；pubDate 保持上游原始格式，不重新解析
type Article struct {
	Title   string `json:"title"`
	Desc    string `json:"desc"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`
}

// 对应 Naver news.json 的响应结构，只取需要的字段
type naverSearchResp struct {
	Items []naverSearchItem `json:"items"`
}

type naverSearchItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
}

// NaverClient 封装 Naver 新闻搜索接口
type NaverClient struct {
	clientID     string
	clientSecret string

	baseURL string
	http    *resty.Client
}

func NewNaverClient(clientID, clientSecret string) *NaverClient {
	return &NaverClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      naverNewsURL,
		http:         resty.New().SetTimeout(searchClientTimeout),
	}
}

// Search 调用一次 Naver 新闻搜索并投影为 SearchResult。
// sort 接受客户端词汇（latest/popular 等），在这里映射为 Naver 的排序模式。
func (n *NaverClient) Search(keyword string, limit int, sort string) (*SearchResult, error) {
	if n.clientID == "" || n.clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	var data naverSearchResp
	resp, err := n.http.R().
		SetHeader("X-Naver-Client-Id", n.clientID).
		SetHeader("X-Naver-Client-Secret", n.clientSecret).
		SetQueryParams(map[string]string{
			"query":   keyword,
			"display": strconv.Itoa(clampLimit(limit)),
			"sort":    mapSortMode(sort),
		}).
		SetResult(&data).
		Get(n.baseURL)
	if err != nil {
		return nil, fmt.Errorf("naver search: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	articles := make([]Article, 0, len(data.Items))
	for _, it := range data.Items {
		// 缺失字段保持空串，不视为错误
		articles = append(articles, Article{
			Title:   it.Title,
			Desc:    it.Description,
			Link:    it.Link,
			PubDate: it.PubDate,
		})
	}

	if len(articles) == 0 {
		log.Printf("naver search %q got 0 items", keyword)
	}

	return &SearchResult{
		Keyword:  keyword,
		Count:    len(articles),
		Articles: articles,
	}, nil
}

// mapSortMode 把客户端的排序偏好映射为 Naver 的排序模式：
// latest/date/time -> date（最新），其余（含 popular）-> sim（相关度/近似热度）。
// 全映射，不拒绝任何取值。
func mapSortMode(sort string) string {
	switch sort {
	case "latest", "date", "time":
		return "date"
	default:
		return "sim"
	}
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > naverMaxDisplay {
		return naverMaxDisplay
	}
	return limit
}
