package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
base_url: http://backend.internal:8000
log_level: debug
timeout: 45s
`)

	cfg := config{baseURL: defaultBaseURL, logLevel: defaultLogLevel}
	gt.NoError(t, cfg.loadProfile(path))

	gt.Equal(t, cfg.baseURL, "http://backend.internal:8000")
	gt.Equal(t, cfg.logLevel, "debug")
	gt.Equal(t, cfg.timeout, 45*time.Second)
}

func TestLoadProfileFlagWins(t *testing.T) {
	path := writeProfile(t, `
base_url: http://backend.internal:8000
log_level: debug
timeout: 45s
`)

	// Values already set by flags or env stay as they are
	cfg := config{
		baseURL:  "http://other:9000",
		logLevel: "warn",
		timeout:  10 * time.Second,
	}
	gt.NoError(t, cfg.loadProfile(path))

	gt.Equal(t, cfg.baseURL, "http://other:9000")
	gt.Equal(t, cfg.logLevel, "warn")
	gt.Equal(t, cfg.timeout, 10*time.Second)
}

func TestLoadProfileInvalid(t *testing.T) {
	cfg := config{baseURL: defaultBaseURL, logLevel: defaultLogLevel}
	gt.Error(t, cfg.loadProfile(filepath.Join(t.TempDir(), "missing.yml")))

	bad := writeProfile(t, "timeout: [not, a, duration]")
	gt.Error(t, cfg.loadProfile(bad))

	badDuration := writeProfile(t, "timeout: soon")
	gt.Error(t, cfg.loadProfile(badDuration))
}

func TestConstructorsRequireBaseURL(t *testing.T) {
	cfg := config{}

	_, err := cfg.newRepository()
	gt.Error(t, err)
	_, err = cfg.newAnswer()
	gt.Error(t, err)
	_, err = cfg.newPapers()
	gt.Error(t, err)
	_, err = cfg.newExporter()
	gt.Error(t, err)
	_, err = cfg.newHealth()
	gt.Error(t, err)
}
