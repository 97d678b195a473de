package collector

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	articleUserAgent     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	articleClientTimeout = 15 * time.Second
	articleMaxBodyBytes  = 2 << 20 // 2MB，防止超大 HTML
)

// ErrEmptyArticle 表示页面抓取成功但标题和正文都为空
// （典型原因：JS 渲染页面、付费墙、非 HTML 响应）
var ErrEmptyArticle = errors.New("article page yielded no title and no content")

// FetchError 保留目标页面返回的原始状态码和响应体
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch article: status %d: %s", e.StatusCode, e.Body)
}

// ArticleDetail 是返回给客户端的文章详情
type ArticleDetail struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OriginLink string `json:"origin_link"`
}

// ArticleCollector 抓取任意文章页并做尽力而为的正文提取
type ArticleCollector struct {
	userAgent string
	timeout   time.Duration
}

func NewArticleCollector() *ArticleCollector {
	return &ArticleCollector{
		userAgent: articleUserAgent,
		timeout:   articleClientTimeout,
	}
}

// Extract 抓取 pageURL 并提取标题与正文。
// 每次调用使用独立的 collector，请求结束后即释放，调用之间不共享状态。
func (a *ArticleCollector) Extract(pageURL string) (*ArticleDetail, error) {
	log.Printf("fetch article %s ...", pageURL)

	c := colly.NewCollector(
		colly.UserAgent(a.userAgent),
		colly.MaxBodySize(articleMaxBodyBytes),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(a.timeout)

	var doc *goquery.Document
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		d, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			fetchErr = fmt.Errorf("parse article html: %w", err)
			return
		}
		doc = d
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = &FetchError{StatusCode: r.StatusCode, Body: string(r.Body)}
			return
		}
		fetchErr = fmt.Errorf("fetch article: %w", err)
	})

	if err := c.Visit(pageURL); err != nil && fetchErr == nil {
		fetchErr = fmt.Errorf("fetch article: %w", err)
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	if doc == nil {
		return nil, fmt.Errorf("fetch article: no response from %s", pageURL)
	}

	title := extractTitle(doc)
	content := extractContent(doc)

	if title == "" && content == "" {
		return nil, ErrEmptyArticle
	}

	return &ArticleDetail{
		URL:        pageURL,
		Title:      title,
		Content:    content,
		OriginLink: pageURL,
	}, nil
}
