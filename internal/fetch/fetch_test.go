package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Job posting content</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Job posting content")
}

func TestURL_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestExtractMainText_UsesJobPostingSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">Senior Go Engineer. Build services.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain content, no recognized containers.</p></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Plain content")
}

func TestExtractMainText_RemovesScriptsAndStyles(t *testing.T) {
	html := `<html><body><script>var x = 1;</script><style>.a{}</style><main>Visible</main></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Visible", strings.TrimSpace(text))
}

func TestJobPosting_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>We are hiring a backend engineer.</main></body></html>`))
	}))
	defer server.Close()

	text, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "hiring a backend engineer")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("tiny"))
	assert.True(t, ShouldUseBrowser(""))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job description text ", 50)))
}
