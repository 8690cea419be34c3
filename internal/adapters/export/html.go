package export

import (
	"fmt"
	"html/template"
	"os"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Listings</title></head>
<body>
<h1>Immobiliare.it Listings</h1>
{{if .Rows}}<table border="1" cellspacing="0" cellpadding="4">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>{{else}}<p>No data.</p>{{end}}
</body>
</html>
`))

func exportHTML(items []domain.ListingRecord, path string) error {
	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, csvRow(&items[i]))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: failed to create %s: %w", path, err)
	}
	defer file.Close()

	data := struct {
		Columns []string
		Rows    [][]string
	}{Columns: csvColumns, Rows: rows}

	if err := reportTemplate.Execute(file, data); err != nil {
		return fmt.Errorf("export: failed to render html report: %w", err)
	}
	return nil
}
