package server

import (
	"captive-portal/internal/config"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedirectURL = "http://hotspot.test.local"

type testPortal struct {
	server    *httptest.Server
	client    *http.Client
	dataPath  string
	publicDir string
}

func newTestPortal(t *testing.T) *testPortal {
	t.Helper()

	root := t.TempDir()
	publicDir := filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(publicDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<form action=\"/submit\"></form>"), 0o644))

	cfg := &config.Config{
		Server: config.ServerConfig{
			PublicDir: publicDir,
		},
		Portal: config.PortalConfig{
			RedirectURL: testRedirectURL,
		},
		Storage: config.StorageConfig{
			Directory: filepath.Join(root, "data"),
		},
		Log: config.LogConfig{
			Level: "error",
		},
	}
	require.NoError(t, cfg.Validate())

	srv, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown() })

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testPortal{
		server: ts,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		dataPath:  cfg.Storage.Path(),
		publicDir: publicDir,
	}
}

func (p *testPortal) postForm(t *testing.T, values url.Values, forwardedFor string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, p.server.URL+"/submit", strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}

	resp, err := p.client.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp
}

func (p *testPortal) records(t *testing.T) [][]string {
	t.Helper()
	f, err := os.Open(p.dataPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func janeDoe() url.Values {
	return url.Values{
		"fullName":    {"Jane Doe"},
		"email":       {"jane@x.com"},
		"phoneNumber": {"555-1234"},
		"companyName": {"Acme"},
	}
}

func assertRedirected(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, testRedirectURL, resp.Header.Get("Location"))
}

func TestSubmit_ValidSubmissionIsStored(t *testing.T) {
	p := newTestPortal(t)

	resp := p.postForm(t, janeDoe(), "203.0.113.5, 10.0.0.1")
	assertRedirected(t, resp)

	data, err := os.ReadFile(p.dataPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "timestamp_iso,full_name,email,phone_number,company_name,client_ip", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",Jane Doe,jane@x.com,555-1234,Acme,203.0.113.5"), lines[1])
}

func TestSubmit_InvalidSubmissionLeavesStoreUnchanged(t *testing.T) {
	p := newTestPortal(t)

	invalid := janeDoe()
	invalid.Set("fullName", "")

	resp := p.postForm(t, invalid, "")
	assertRedirected(t, resp)
	_, err := os.Stat(p.dataPath)
	assert.True(t, os.IsNotExist(err), "no file should be created for a rejected submission")

	p.postForm(t, janeDoe(), "")
	before, err := os.ReadFile(p.dataPath)
	require.NoError(t, err)

	resp = p.postForm(t, invalid, "")
	assertRedirected(t, resp)

	after, err := os.ReadFile(p.dataPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSubmit_HeaderWrittenOnce(t *testing.T) {
	p := newTestPortal(t)

	valid := 0
	for i := 0; i < 10; i++ {
		values := janeDoe()
		if i%3 == 0 {
			values.Set("email", "")
		} else {
			valid++
		}
		assertRedirected(t, p.postForm(t, values, ""))
	}

	records := p.records(t)
	require.Len(t, records, valid+1)
	headers := 0
	for _, record := range records {
		if record[0] == "timestamp_iso" {
			headers++
		}
	}
	assert.Equal(t, 1, headers)
}

func TestSubmit_ClientAddressFallsBackToConnection(t *testing.T) {
	p := newTestPortal(t)

	assertRedirected(t, p.postForm(t, janeDoe(), ""))

	records := p.records(t)
	require.Len(t, records, 2)
	assert.Equal(t, "127.0.0.1", records[1][5])
}

func TestSubmit_ConcurrentSubmissions(t *testing.T) {
	const requests = 50

	p := newTestPortal(t)

	var wg sync.WaitGroup
	statuses := make(chan int, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values := janeDoe()
			values.Set("companyName", fmt.Sprintf("Acme, \"Branch %d\"", i))
			req, err := http.NewRequest(http.MethodPost, p.server.URL+"/submit", strings.NewReader(values.Encode()))
			if err != nil {
				statuses <- 0
				return
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			resp, err := p.client.Do(req)
			if err != nil {
				statuses <- 0
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}(i)
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		assert.Equal(t, http.StatusFound, status)
	}

	records := p.records(t)
	require.Len(t, records, requests+1)

	companies := make(map[string]bool, requests)
	for _, record := range records[1:] {
		require.Len(t, record, 6)
		companies[record[4]] = true
	}
	assert.Len(t, companies, requests)
}

func TestSubmit_JSONBody(t *testing.T) {
	p := newTestPortal(t)

	body := `{"fullName":"Jane Doe","email":"jane@x.com","phoneNumber":"555-1234","companyName":"Acme, \"Inc\""}`
	resp, err := p.client.Post(p.server.URL+"/submit", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assertRedirected(t, resp)

	data, err := os.ReadFile(p.dataPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `,"Acme, ""Inc""",127.0.0.1`+"\n")
}

func TestSubmit_StorageFailureStillRedirects(t *testing.T) {
	p := newTestPortal(t)

	require.NoError(t, os.MkdirAll(p.dataPath, 0o755))

	resp := p.postForm(t, janeDoe(), "")
	assertRedirected(t, resp)
}

func TestStaticFilesAndHealth(t *testing.T) {
	p := newTestPortal(t)

	resp, err := p.client.Get(p.server.URL + "/index.html")
	require.NoError(t, err)
	resp.Body.Close()
	// http.FileServer redirects /index.html to /
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)

	resp, err = p.client.Get(p.server.URL + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `action="/submit"`)

	resp, err = p.client.Get(p.server.URL + "/missing.css")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = p.client.Get(p.server.URL + "/api/v1/health")
	require.NoError(t, err)
	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, "OK", health["status"])
}

func TestNew_PreservesExistingFileWithUnexpectedHeader(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	existing := "legacy,row\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "submissions.csv"), []byte(existing), 0o644))

	cfg := &config.Config{
		Server:  config.ServerConfig{PublicDir: root},
		Portal:  config.PortalConfig{RedirectURL: testRedirectURL},
		Storage: config.StorageConfig{Directory: dataDir},
		Log:     config.LogConfig{Level: "error"},
	}
	require.NoError(t, cfg.Validate())

	srv, err := New(cfg)
	require.NoError(t, err)
	defer srv.Shutdown()

	data, err := os.ReadFile(cfg.Storage.Path())
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestNew_FailsWhenStorageDirectoryCannotBeCreated(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	cfg := &config.Config{
		Server:  config.ServerConfig{PublicDir: root},
		Portal:  config.PortalConfig{RedirectURL: testRedirectURL},
		Storage: config.StorageConfig{Directory: filepath.Join(blocker, "data")},
		Log:     config.LogConfig{Level: "error"},
	}
	require.NoError(t, cfg.Validate())

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create storage directory")
}
