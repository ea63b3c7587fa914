package client

import (
	"fmt"
	"strings"

	"vitibrasil/scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

type tableParser struct{}

func newTableParser() *tableParser {
	return &tableParser{}
}

// ParseTable extracts the main data table from a Vitibrasil page as rows
// of cell texts. Header, body and footer rows are all kept, in document
// order, so the caller sees exactly what the page shows.
func (p *tableParser) ParseTable(html string) (domain.ResultSet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	table := p.findDataTable(doc)
	if table == nil {
		return nil, fmt.Errorf("no data table found in page")
	}

	rows := p.extractRows(table)
	log.Debugf("Extracted %d rows from data table", len(rows))
	return rows, nil
}

func (p *tableParser) findDataTable(doc *goquery.Document) *goquery.Selection {
	// The statistics pages mark their data table with tb_base tb_dados
	table := doc.Find("table.tb_base.tb_dados").First()
	if table.Length() > 0 {
		return table
	}

	// Fall back to the densest table on the page
	var best *goquery.Selection
	bestRows := 0
	doc.Find("table").Each(func(i int, s *goquery.Selection) {
		if n := s.Find("tr").Length(); n > bestRows {
			best = s
			bestRows = n
		}
	})
	return best
}

func (p *tableParser) extractRows(table *goquery.Selection) domain.ResultSet {
	rows := make(domain.ResultSet, 0)

	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		row := make(domain.Row, 0)
		tr.Find("th, td").Each(func(j int, cell *goquery.Selection) {
			row = append(row, cellText(cell))
		})
		if len(row) == 0 {
			return
		}
		rows = append(rows, row)
	})

	return rows
}

// cellText collapses runs of whitespace so indented markup comes out as
// a single-space-separated string.
func cellText(cell *goquery.Selection) string {
	return strings.Join(strings.Fields(cell.Text()), " ")
}
