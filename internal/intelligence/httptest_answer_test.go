package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/faqbot/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

func httpGenerator(t *testing.T, endpoint string) Generator {
	t.Helper()
	cfg := llm.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Token = "hf_test"
	cfg.TimeoutMs = 2000
	client, err := llm.NewClient(cfg, llm.NoopObserver{})
	require.NoError(t, err)
	return llm.NewGenerator(client)
}

// TestCompose_WithHTTPTestServer runs the full path from the inference API
// response through echo stripping into the composed answer.
func TestCompose_WithHTTPTestServer(t *testing.T) {
	leaf := replLeaf(t)

	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Inputs string `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, strings.HasPrefix(body.Inputs, "Por favor, forneça uma explicação detalhada"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]string{
			{"generated_text": body.Inputs + " A REPL lê cada linha e mostra o resultado."},
		})
	})
	defer srv.Close()

	c := NewAnswerService(httpGenerator(t, srv.URL)).Compose(context.Background(), leaf)

	assert.Equal(t, SourceLLM, c.Source)
	assert.True(t, strings.HasSuffix(c.Text, "\n\nA REPL lê cada linha e mostra o resultado."))
	assert.Equal(t, 1, strings.Count(c.Text, leaf.Answer()), "prompt echo must be stripped")
}

func TestCompose_WithHTTPTestServerError(t *testing.T) {
	leaf := replLeaf(t)

	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Authorization header is correct, but the token seems invalid"}`))
	})
	defer srv.Close()

	c := NewAnswerService(httpGenerator(t, srv.URL)).Compose(context.Background(), leaf)

	var genErr *llm.GenerationError
	require.ErrorAs(t, c.Err, &genErr)
	assert.Equal(t, http.StatusUnauthorized, genErr.StatusCode)
	assert.Contains(t, c.Text, "Erro ao consultar o LLM:")
	assert.Contains(t, c.Text, "status 401")
}
