package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"

	"github.com/khalilrez/food-log-api/internal/model"
)

var pageTmpl = template.Must(template.New("foodlog").Parse(`<!doctype html>

<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Food log for {{.Username}}</title>
</head>

<body>
    <table>
        <thead>
            <th>Food</th>
            <th>Added</th>
            <th>Servings</th>
            <th>Calories (kcal)</th>
        </thead>
        <tbody>
{{- range .Rows}}
            <tr>
                <td>{{.FoodName}}</td>
                <td>{{.DateAdded}}</td>
                <td>{{.Servings}} x {{.ServingSize}}</td>
                <td>{{.TotalCalories}}</td>
            </tr>
{{- end}}
        </tbody>
    </table>

</body>
</html>
`))

type pageRow struct {
	FoodName      string
	DateAdded     string
	Servings      string
	ServingSize   string
	TotalCalories string
}

type pageData struct {
	Username string
	Rows     []pageRow
}

// RenderHTML строит страницу журнала по логину из снимков записей.
// Если записей нет — ErrNotFound.
func (s *EntryService) RenderHTML(ctx context.Context, username string) (string, error) {
	entries, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("list entries of %q: %w", username, err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no food entries for %q: %w", username, ErrNotFound)
	}
	return renderPage(username, entries)
}

func renderPage(username string, entries []model.FoodEntry) (string, error) {
	data := pageData{Username: username, Rows: make([]pageRow, 0, len(entries))}
	for i := range entries {
		e := &entries[i]
		data.Rows = append(data.Rows, pageRow{
			FoodName:      e.Food.Name,
			DateAdded:     e.DateAdded.Format("2006-01-02 15:04:05"),
			Servings:      formatNumber(e.NumberServings),
			ServingSize:   e.Food.ServingSize,
			TotalCalories: formatNumber(e.TotalCalories()),
		})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

// formatNumber — 1.5 -> "1.5", 2 -> "2".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
