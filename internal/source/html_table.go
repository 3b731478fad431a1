package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultTableSelector таблица с занятиями на странице расписания
const DefaultTableSelector = "#mainContent_grdClasses"

var (
	ErrTableNotFound = errors.New("class table not found")
	ErrNoRows        = errors.New("no class rows found")
)

// HTMLTable читает строки таблицы расписания со страницы (URL или сохранённый файл)
type HTMLTable struct {
	url      string
	path     string
	selector string
	client   *http.Client
}

// NewURLTable источник, который на каждом чтении заново загружает страницу
func NewURLTable(url, selector string, client *http.Client) *HTMLTable {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTMLTable{url: url, selector: withDefault(selector), client: client}
}

// NewFileTable источник на основе сохранённой HTML-страницы
func NewFileTable(path, selector string) *HTMLTable {
	return &HTMLTable{path: path, selector: withDefault(selector)}
}

func withDefault(selector string) string {
	if strings.TrimSpace(selector) == "" {
		return DefaultTableSelector
	}
	return selector
}

// Describe возвращает адрес источника для логов
func (t *HTMLTable) Describe() string {
	if t.url != "" {
		return t.url
	}
	return t.path
}

// Rows читает страницу и возвращает строки таблицы без строки заголовка
func (t *HTMLTable) Rows(ctx context.Context) ([]model.Row, error) {
	body, err := t.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ParseRows(body, t.selector)
}

func (t *HTMLTable) open(ctx context.Context) (io.ReadCloser, error) {
	if t.url == "" {
		f, err := os.Open(t.path)
		if err != nil {
			return nil, fmt.Errorf("open schedule page: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build schedule request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule page: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch schedule page: unexpected status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// ParseRows разбирает HTML и возвращает строки таблицы selector.
// Первая строка tbody считается заголовком и пропускается.
func ParseRows(r io.Reader, selector string) ([]model.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse schedule page: %w", err)
	}

	table := doc.Find(withDefault(selector)).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	trs := table.Find("tbody tr")
	if trs.Length() <= 1 {
		return nil, ErrNoRows
	}

	rows := make([]model.Row, 0, trs.Length()-1)
	trs.Slice(1, trs.Length()).Each(func(i int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td, th")
		row := model.Row{Index: i, Cells: make([]string, 0, cells.Length())}
		cells.Each(func(_ int, cell *goquery.Selection) {
			row.Cells = append(row.Cells, innerText(cell))
		})
		rows = append(rows, row)
	})

	return rows, nil
}

// innerText собирает текст ячейки, превращая <br> в перевод строки
func innerText(cell *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range cell.Nodes {
		collectText(&sb, n)
	}

	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// переводы строк в исходном HTML не являются переводами строк в тексте
var whitespace = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func collectText(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			sb.WriteString(whitespace.Replace(c.Data))
		case c.Type == html.ElementNode && c.Data == "br":
			sb.WriteString("\n")
		case c.Type == html.ElementNode && (c.Data == "div" || c.Data == "p"):
			sb.WriteString("\n")
			collectText(sb, c)
			sb.WriteString("\n")
		case c.Type == html.ElementNode:
			collectText(sb, c)
		}
	}
}
