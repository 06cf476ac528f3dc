package untappdweb_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newUntappdServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("type") != "brewery" {
			http.NotFound(writer, request)

			return
		}

		http.ServeFile(writer, request, "testdata/search.html")
	})
	mux.HandleFunc("/FremontBrewing", func(writer http.ResponseWriter, request *http.Request) {
		http.ServeFile(writer, request, "testdata/brewery.html")
	})
	mux.HandleFunc("/FremontBrewing/beer", func(writer http.ResponseWriter, request *http.Request) {
		http.ServeFile(writer, request, "testdata/beers.html")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}
