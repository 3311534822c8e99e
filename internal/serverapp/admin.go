package serverapp

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
)

//go:embed templates/admin.html
var adminTemplatesFS embed.FS

var adminTmpl = template.Must(
	template.New("admin.html").ParseFS(adminTemplatesFS, "templates/admin.html"),
)

type adminPageData struct {
	Routes []RouteDoc
}

func registerAdminUI(mux *http.ServeMux, rr *RouteRegistry) {
	mux.HandleFunc("GET /_/admin/routes.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(rr.List())
	})

	mux.HandleFunc("GET /_/admin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := adminTmpl.Execute(w, adminPageData{Routes: rr.List()}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
