package server

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/zlyzol/settlemath/internal/config"
)

func TestServerRoutes(t *testing.T) {
	dir, err := ioutil.TempDir("", "settlemath")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	logFile := filepath.Join(dir, "calc.log")

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.ListenPort = 0
	cfg.LogLevel = "debug"
	cfg.LogFile = logFile
	cfg.ShutdownTimeout = time.Second
	s, err := newServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.registerEchoWithLogger()
	if err := s.calc.Start(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/muldiv?a=10&b=10&c=3", nil)
	rec := httptest.NewRecorder()
	s.echoEngine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"result":"33"`) {
		t.Errorf("GET /v1/muldiv = %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("request id header missing")
	}

	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	body, err := ioutil.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "muldiv") {
		t.Errorf("request not logged to file:\n%s", body)
	}
}

func TestServerRejectsBadConfig(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Math.SeriesEpsilon = "nope"
	if _, err := newServer(cfg); err == nil {
		t.Error("invalid series epsilon accepted")
	}
}

func TestServerStartRunsCalculatorFirst(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.ListenPort = 0
	cfg.ShutdownTimeout = time.Second
	s, err := newServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	s.echoEngine.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), `"calculator":"Running"`) {
		t.Errorf("GET /v1/health right after Start = %d %s", rec.Code, rec.Body.String())
	}
}
