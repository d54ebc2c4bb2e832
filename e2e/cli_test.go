package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordlestrat/internal/api"
	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/factory"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
	"github.com/mcoot/wordlestrat/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	wordsPath  string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(t.TempDir(), "wordlestrat-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wordlestrat")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		wordsPath:  filepath.Join(projectRoot, "data", "five_letter_words.txt"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{"--words", r.wordsPath}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "WORDLESTRAT_SERVER=", "WORDLESTRAT_STORAGE=memory")
	output, err := cmd.Output()
	return string(output), err
}

func (r *cliRunner) runJSON(t *testing.T, result any, args ...string) {
	t.Helper()
	output, err := r.run(append([]string{"--output", "json"}, args...)...)
	require.NoError(t, err, output)
	require.NoError(t, json.Unmarshal([]byte(output), result), output)
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer runs the API on a free port until the test ends
func startTestServer(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	hist := histogram.DefaultConfig()
	hist.Color = false
	app, err := factory.New(factory.Config{Logger: testutil.NopLogger(), Histogram: hist})
	require.NoError(t, err)
	require.NoError(t, app.LoadWords(t.Context(), filepath.Join(findProjectRoot(t), "data", "five_letter_words.txt")))

	router := api.NewRouter(api.RouterConfig{
		Logger:           testutil.NopLogger(),
		WordListService:  app.WordListService,
		FrequencyService: app.FrequencyService,
		ScoringService:   app.ScoringService,
		RunsController:   app.RunsController,
		HistogramService: app.HistogramService,
	})

	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = port
	cfg.ShutdownTimeout = 5 * time.Second
	server := api.NewServer(router, cfg, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	serverURL := "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	waitForServer(t, serverURL+"/api/v1/health")
	return serverURL
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatalf("server at %s did not become ready", url)
}

func TestCLIReport(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("report", "--experiments", "100", "--trials", "40", "--seed", "2024")
	require.NoError(t, err, output)

	assert.Contains(t, output, "First 25 words: cores coals bears pears years")
	assert.Contains(t, output, "Number of words: 500")
	assert.Contains(t, output, "Best letters by slot (ranked):")
	assert.Contains(t, output, "Wordle Guessing Strategies")
	assert.Contains(t, output, "Felix (n=40, bins=5)")
	assert.Contains(t, output, "Laney (n=40, bins=10)")
	assert.Contains(t, output, "x: Number of Letters Correct, y: Number of Experiments")
}

func TestCLIScoreAndLetters(t *testing.T) {
	cli := newCLIRunner(t)

	var score response.Score
	cli.runJSON(t, &score, "score", "cores", "coals")
	assert.Equal(t, 3, score.Score)

	var ranked, greedy response.BestLetters
	cli.runJSON(t, &ranked, "letters")
	cli.runJSON(t, &greedy, "letters", "--selection", "greedy")

	for _, slot := range []string{"first", "second", "third", "fourth", "fifth"} {
		assert.Len(t, ranked.Slots[slot], 5)
		assert.Len(t, greedy.Slots[slot], 5)
	}
}

func TestCLISimulateSeededParallelRunsAreReproducible(t *testing.T) {
	cli := newCLIRunner(t)

	var first, second response.Run
	cli.runJSON(t, &first, "simulate", "-e", "50", "-t", "30", "--seed", "11", "--parallel", "4")
	cli.runJSON(t, &second, "simulate", "-e", "50", "-t", "30", "--seed", "11", "--parallel", "4")

	require.NotNil(t, first.Averages)
	assert.Equal(t, first.Averages, second.Averages)
	assert.Equal(t, first.StatsA, second.StatsA)
	for _, avg := range first.Averages.A {
		assert.GreaterOrEqual(t, avg, 0.0)
		assert.LessOrEqual(t, avg, 5.0)
	}
}

func TestCLIAgainstServer(t *testing.T) {
	cli := newCLIRunner(t)
	serverURL := startTestServer(t)

	output, err := cli.run("--server", serverURL, "health")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Words: 500")

	var created response.Run
	cli.runJSON(t, &created, "--server", serverURL, "simulate", "-e", "20", "-t", "10", "--seed", "4")
	require.NotEmpty(t, created.ID)

	var list response.RunList
	cli.runJSON(t, &list, "--server", serverURL, "runs", "list")
	require.Len(t, list.Runs, 1)
	assert.Equal(t, created.ID, list.Runs[0].ID)

	output, err = cli.run("--server", serverURL, "runs", "show", created.ID)
	require.NoError(t, err, output)
	assert.Contains(t, output, "Run: "+created.ID)

	resp, err := http.Get(serverURL + "/api/v1/runs/" + created.ID + "/histogram")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
}
