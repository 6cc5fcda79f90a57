package listings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/types"
)

const catalogPage = `<html><body>
<article class="listing">
  <h2 class="title">Data Analyst Intern</h2>
  <span class="company">Acme Analytics</span>
  <span class="location">Bangalore</span>
  <p class="description">Work with dashboards and SQL pipelines.</p>
  <ul class="skills"><li>Python</li><li>SQL</li></ul>
  <span class="compensation">5000/month</span>
</article>
<article class="listing">
  <h2 class="title">Ops Intern</h2>
  <span class="company">Widget Works</span>
  <span class="location">Remote</span>
</article>
<article class="listing">
  <p class="description">nothing useful here</p>
</article>
</body></html>`

func TestParseCatalogHTML_ExtractsListings(t *testing.T) {
	pool, err := ParseCatalogHTML(catalogPage)
	require.NoError(t, err)

	require.Len(t, pool, 2)
	assert.Equal(t, "Acme Analytics", pool[0].CompanyName)
	assert.Equal(t, "Data Analyst Intern", pool[0].Title)
	assert.Equal(t, "Bangalore", pool[0].Location)
	assert.Equal(t, []string{"Python", "SQL"}, pool[0].RequiredSkills)
	assert.Equal(t, "5000/month", pool[0].Compensation)
	assert.Equal(t, "Widget Works", pool[1].CompanyName)
}

func TestParseCatalogHTML_EmptyPage(t *testing.T) {
	pool, err := ParseCatalogHTML("<html><body><p>no listings</p></body></html>")
	require.NoError(t, err)

	assert.Empty(t, pool)
}

func TestHTMLSource_FetchCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogPage))
	}))
	defer server.Close()

	pool, err := NewHTMLSource(server.URL).FetchCandidates(context.Background(), types.StudentProfile{})
	require.NoError(t, err)

	assert.Len(t, pool, 2)
}

func TestHTMLSource_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewHTMLSource(server.URL).FetchCandidates(context.Background(), types.StudentProfile{})

	var srcErr *SourceUnavailableError
	assert.ErrorAs(t, err, &srcErr)
}

func TestHTMLSource_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := NewHTMLSource(server.URL).FetchCandidates(context.Background(), types.StudentProfile{})

	var srcErr *SourceUnavailableError
	assert.ErrorAs(t, err, &srcErr)
}
