package collector

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fallback 全局扫描时最多取前 30 个非空段落，避免响应过大
const globalParagraphLimit = 30

// extractStrategy 从解析后的文档中提取正文，返回空串表示未命中。
// 按顺序逐个尝试，方便以后为其它站点追加专用策略而不用堆 if 分支。
type extractStrategy func(doc *goquery.Document) string

var contentStrategies = []extractStrategy{
	naverContentStrategy,
	globalParagraphStrategy,
}

func extractContent(doc *goquery.Document) string {
	for _, strategy := range contentStrategies {
		if text := strategy(doc); text != "" {
			return text
		}
	}
	return ""
}

// naverContentStrategy 针对 Naver 新闻页（新版 UI）：正文在 #dic_area 容器内，
// 取其中的 p/span 文本，去空后按文档顺序换行拼接
func naverContentStrategy(doc *goquery.Document) string {
	area := doc.Find("#dic_area").First()
	if area.Length() == 0 {
		return ""
	}

	var parts []string
	area.Find("p, span").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n")
}

// globalParagraphStrategy 兜底：在整个文档里扫 p 标签，取前 30 个非空段落
func globalParagraphStrategy(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(parts) >= globalParagraphLimit {
			return false
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
		return true
	})
	return strings.Join(parts, "\n")
}

// extractTitle 取 <title> 文本，缺失时返回空串
func extractTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}
