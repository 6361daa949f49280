package docs

import (
	"embed"
	httptemplate "html/template"
	"net/http"

	"github.com/gorilla/mux"
)

const (
	apiFile   = "/static/openapi.json"
	indexFile = "template/index.tpl"
)

//go:embed static
var Static embed.FS

//go:embed template
var template embed.FS

// RegisterOpenAPIService mounts the editions gateway description and a small
// index page that links to it.
func RegisterOpenAPIService(appName string, rtr *mux.Router) {
	rtr.Handle(apiFile, http.FileServer(http.FS(Static))).Methods(http.MethodGet)
	rtr.HandleFunc("/", handler(appName)).Methods(http.MethodGet)
}

func handler(title string) http.HandlerFunc {
	t := httptemplate.Must(httptemplate.ParseFS(template, indexFile))

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = t.Execute(w, struct {
			Title string
			URL   string
		}{
			title,
			apiFile,
		})
	}
}
