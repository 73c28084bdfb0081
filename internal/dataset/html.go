package dataset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
)

func loadHTMLFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadHTMLBytes(data)
}

// loadHTMLBytes reads the first <table> of an HTML export. The header is
// the first row, whether it uses <th> or <td> cells.
func loadHTMLBytes(data []byte) (*Store, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in html")
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, cell.Text())
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})

	if len(rows) == 0 {
		return nil, fmt.Errorf("table has no rows")
	}
	return buildStore(rows[0], rows[1:])
}
