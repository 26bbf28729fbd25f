package handlers

import "html/template"

const pageTemplates = `
{{define "grid.html"}}<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<main style="display: flex; flex-wrap: wrap; gap: 36px">
{{range .Cards}}{{.}}
{{else}}<p>No shoes yet.</p>
{{end}}</main>
</body>
</html>{{end}}

{{define "shoe.html"}}<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<main>{{range .Cards}}{{.}}{{end}}</main>
</body>
</html>{{end}}
`

// Templates returns the page templates served by ShoeHandler.
func Templates() *template.Template {
	return template.Must(template.New("pages").Parse(pageTemplates))
}

type pageData struct {
	Title string
	Cards []template.HTML
}
