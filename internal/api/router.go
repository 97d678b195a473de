package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/LJTian/StockNewsHub/internal/collector"
	"github.com/gin-gonic/gin"
)

// 首页热点固定用"주식"（韩语"股票"）关键词查全盘行情新闻
const hotNewsKeyword = "주식"

const (
	hotNewsDefaultLimit = 5
	hotNewsMaxLimit     = 50
	newsDefaultLimit    = 30
	newsMaxLimit        = 100
)

// NewsSearcher 抽象新闻搜索，方便在 handler 测试里替换为假实现
type NewsSearcher interface {
	Search(keyword string, limit int, sort string) (*collector.SearchResult, error)
}

// ArticleExtractor 抽象文章抓取
type ArticleExtractor interface {
	Extract(pageURL string) (*collector.ArticleDetail, error)
}

type Server struct {
	searcher  NewsSearcher
	extractor ArticleExtractor
}

func NewServer(searcher NewsSearcher, extractor ArticleExtractor) *Server {
	return &Server{searcher: searcher, extractor: extractor}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/", s.home)
	r.GET("/hot-news", s.hotNews)
	r.GET("/news", s.searchNews)
	r.GET("/article", s.articleDetail)
}

func (s *Server) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Stock news backend running",
		"endpoints": []string{"/hot-news", "/news", "/article"},
	})
}

// hotNews 首页热点：默认 5 条、popular 排序，"更多"时客户端把 limit 调大
func (s *Server) hotNews(c *gin.Context) {
	limit := parseLimit(c, hotNewsDefaultLimit, hotNewsMaxLimit)
	sort := c.DefaultQuery("sort", "popular")

	result, err := s.searcher.Search(hotNewsKeyword, limit, sort)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// searchNews 搜索框入口：keyword 必填，默认 30 条、latest 排序
func (s *Server) searchNews(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "missing_keyword",
			"message": "query parameter 'keyword' is required",
		})
		return
	}

	limit := parseLimit(c, newsDefaultLimit, newsMaxLimit)
	sort := c.DefaultQuery("sort", "latest")

	result, err := s.searcher.Search(keyword, limit, sort)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// articleDetail 文章详情：抓取 url 指向的页面并提取标题和正文
func (s *Server) articleDetail(c *gin.Context) {
	pageURL := c.Query("url")
	if pageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "missing_url",
			"message": "query parameter 'url' is required",
		})
		return
	}

	detail, err := s.extractor.Extract(pageURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// parseLimit 解析 limit 参数：无效或非正数退回默认值，超过上限截到上限
func parseLimit(c *gin.Context, def, max int) int {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// writeError 把采集层错误映射为 HTTP 响应：
// 上游失败时透传上游状态码，其余情况统一 500
func writeError(c *gin.Context, err error) {
	var upstreamErr *collector.UpstreamError
	var fetchErr *collector.FetchError

	switch {
	case errors.As(err, &upstreamErr):
		c.JSON(upstreamErr.StatusCode, gin.H{
			"code":    "upstream_error",
			"message": err.Error(),
		})
	case errors.As(err, &fetchErr):
		c.JSON(fetchErr.StatusCode, gin.H{
			"code":    "fetch_error",
			"message": err.Error(),
		})
	case errors.Is(err, collector.ErrMissingCredentials):
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "config_error",
			"message": err.Error(),
		})
	case errors.Is(err, collector.ErrEmptyArticle):
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "extract_error",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
	}
}

// CORSMiddleware 放开跨域限制，移动端 WebView / Flutter 调用需要。
// 后续如需收紧可改为白名单域名。
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
