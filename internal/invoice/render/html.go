package render

import (
	"bytes"
	"html/template"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
      -webkit-font-smoothing: antialiased;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 820px;
      margin: 0 auto;
      padding: 48px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    h1 { font-size: 22px; margin: 0 0 24px 0; }
    h2 {
      font-size: 12px;
      text-transform: uppercase;
      letter-spacing: 0.3px;
      color: #8792a2;
      margin: 28px 0 8px 0;
    }
    .field { display: flex; font-size: 14px; padding: 2px 0; }
    .field .label { width: 160px; color: #697386; }
    .field .value { color: #1a1f36; }
    table { width: 100%; border-collapse: collapse; margin-top: 8px; }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 11px;
      color: #8792a2;
      border-bottom: 1px solid #e3e8ee;
      padding: 8px 6px;
    }
    td {
      padding: 8px 6px;
      border-bottom: 1px solid #e3e8ee;
      font-size: 13px;
      vertical-align: top;
    }
    .line { font-size: 13px; color: #1a1f36; margin: 4px 0; }
  </style>
</head>
<body>
  <div class="invoice-card">
    <h1>{{.Title}}</h1>
    {{range .Sections}}
    <section data-kind="{{.Kind}}">
      <h2>{{.Title}}</h2>
      {{range .Fields}}
      <div class="field"><span class="label">{{.Label}}</span><span class="value">{{.Value}}</span></div>
      {{end}}
      {{with .Table}}
      <table>
        <thead>
          <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
        </thead>
        <tbody>
          {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
          {{end}}
        </tbody>
      </table>
      {{end}}
      {{range .Lines}}
      <p class="line">{{.}}</p>
      {{end}}
    </section>
    {{end}}
  </div>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("invoice").Parse(documentHTMLTemplate))

// HTML serializes a Document to a standalone HTML page. Output is
// byte-identical for identical documents.
func HTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
