package collector

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestNaverContentStrategyTrimsAndJoins(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<p>页面其它地方的段落不应被采集</p>
		<div id="dic_area">
			<p>  첫 번째 문단  </p>
			<p>   </p>
			<span>두 번째</span>
			<p></p>
			<p>세 번째 문단</p>
		</div>
	</body></html>`)

	got := naverContentStrategy(doc)
	want := "첫 번째 문단\n두 번째\n세 번째 문단"
	if got != want {
		t.Fatalf("naverContentStrategy = %q, want %q", got, want)
	}
}

func TestNaverContentStrategyMissesWithoutContainer(t *testing.T) {
	doc := mustParse(t, `<html><body><p>plain paragraph</p></body></html>`)
	if got := naverContentStrategy(doc); got != "" {
		t.Fatalf("expected empty result without #dic_area, got %q", got)
	}
}

func TestGlobalParagraphStrategyCapsAtThirty(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "<p>paragraph %d</p>", i)
	}
	b.WriteString("</body></html>")

	got := globalParagraphStrategy(mustParse(t, b.String()))
	lines := strings.Split(got, "\n")
	if len(lines) != globalParagraphLimit {
		t.Fatalf("got %d paragraphs, want %d", len(lines), globalParagraphLimit)
	}
	if lines[0] != "paragraph 1" {
		t.Fatalf("lines[0] = %q, want %q", lines[0], "paragraph 1")
	}
	if lines[len(lines)-1] != "paragraph 30" {
		t.Fatalf("last line = %q, want %q", lines[len(lines)-1], "paragraph 30")
	}
}

func TestGlobalParagraphStrategySkipsEmptyParagraphs(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<p>  one  </p>
		<p>   </p>
		<p>two</p>
	</body></html>`)

	got := globalParagraphStrategy(doc)
	if got != "one\ntwo" {
		t.Fatalf("globalParagraphStrategy = %q, want %q", got, "one\ntwo")
	}
}

func TestExtractContentPrefersContainerOverGlobalScan(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<p>global paragraph</p>
		<div id="dic_area"><p>container paragraph</p></div>
	</body></html>`)

	if got := extractContent(doc); got != "container paragraph" {
		t.Fatalf("extractContent = %q, want container text", got)
	}
}

func TestExtractContentFallsBackWhenContainerEmpty(t *testing.T) {
	// 容器存在但内容全空时，应走全局兜底
	doc := mustParse(t, `<html><body>
		<div id="dic_area"><p>   </p><span></span></div>
		<p>fallback paragraph</p>
	</body></html>`)

	if got := extractContent(doc); got != "fallback paragraph" {
		t.Fatalf("extractContent = %q, want fallback text", got)
	}
}

func TestExtractTitle(t *testing.T) {
	doc := mustParse(t, `<html><head><title>  뉴스 제목  </title></head><body></body></html>`)
	if got := extractTitle(doc); got != "뉴스 제목" {
		t.Fatalf("extractTitle = %q, want %q", got, "뉴스 제목")
	}

	empty := mustParse(t, `<html><head></head><body></body></html>`)
	if got := extractTitle(empty); got != "" {
		t.Fatalf("extractTitle on titleless page = %q, want empty", got)
	}
}
