package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/tmorwood/userhub/internal/factory"
	"github.com/tmorwood/userhub/internal/testutil"
	"github.com/tmorwood/userhub/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestApp()

	router, err := web.NewRouter(web.RouterConfig{
		Logger:      testutil.NopLogger(),
		AuthService: app.AuthService,
	})
	require.NoError(t, err)

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows the Location header of a redirect response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "response has no Location header")
	return ts.get(location)
}

// register creates an account and logs it in, so tests can start from an
// authenticated state
func (ts *webTestServer) loginAs(username, password string) {
	ts.t.Helper()

	rr := ts.post("/signup", url.Values{"username": {username}, "password": {password}})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)

	rr = ts.post("/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
	require.True(ts.t, ts.cookies.hasSession())
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// assertContainsText asserts that the selector matches an element whose text
// contains the given substring
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	found := false
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), text) {
			found = true
		}
	})
	require.True(t, found, "no %q element containing %q", selector, text)
}

// assertContainsElement asserts that the selector matches at least one element
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	require.Positive(t, doc.Find(selector).Length(), "no element matching %q", selector)
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	cookie, ok := j.cookies["session"]
	return ok && cookie.Value != ""
}
