package http

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
)

// listOrders renders the operator view: every order, newest first, as a
// plain HTML table rather than raw JSON.
func (s *Service) listOrders(w http.ResponseWriter, r *http.Request) error {
	orders, err := s.orderSvc.ListAllOrders(r.Context())
	if err != nil {
		return fmt.Errorf("order service list all orders: %w", err)
	}

	var buf bytes.Buffer
	if err := ordersTemplate.Execute(&buf, orders); err != nil {
		return fmt.Errorf("render orders page: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
	return nil
}

var ordersTemplate = template.Must(template.New("orders").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Orders</title>
  <style>
    body { font-family: sans-serif; margin: 2rem; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
    th { background: #f0f0f0; }
  </style>
</head>
<body>
<h1>Orders ({{len .}})</h1>
<table>
  <tr>
    <th>Placed</th><th>Name</th><th>Mobile</th><th>State</th><th>District</th><th>Address</th>
  </tr>
{{- range .}}
  <tr>
    <td>{{.CreatedAt.Format "2006-01-02 15:04"}}</td>
    <td>{{.Name}}</td>
    <td>{{.Mobile}}</td>
    <td>{{.State}}</td>
    <td>{{.District}}</td>
    <td>{{.Address}}</td>
  </tr>
{{- end}}
</table>
</body>
</html>
`))
