package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/credence/internal/adapters/inbound/cli"
	"github.com/abdidvp/credence/internal/application"
	"github.com/abdidvp/credence/internal/domain"
)

const articleText = "Officials confirmed the figures on Tuesday after a review of the published budget data."

// runCLI executes the root command against an isolated working directory
// with no model, search or chain credentials.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"CREDENCE_LLM_API_KEY", "OPENAI_API_KEY", "TAVILY_API_KEY", "NEWS_API_KEY", "CREDENCE_RPC_URL", "CREDENCE_REDIS_URL"} {
		t.Setenv(key, "")
	}

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(append(args, "--dir", dir, "--log-level", "error"))
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "credence dev")
}

func TestReputationCommand_JSON(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "reputation", "https://www.reuters.com/world", "--json")
	require.NoError(t, err)

	var rep domain.DomainReputation
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 95, rep.Score)
	assert.Equal(t, domain.TierHighlyTrusted, rep.Tier)
}

func TestReputationCommand_Default(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "reputation", "https://example.com/story")
	require.NoError(t, err)
	assert.Contains(t, out, "example.com")
}

func TestReputationCommand_List(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "reputation", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "reuters.com")
	assert.Contains(t, out, "europa.eu")
}

func TestReputationCommand_RequiresURL(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "reputation")
	assert.Error(t, err)
}

func TestConsensusCommand_JSON(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "consensus", "--ai", "80", "--real", "7", "--fake", "2", "--uncertain", "1", "--json")
	require.NoError(t, err)

	var report application.ConsensusReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 77, report.Consensus.FinalScore)
	assert.Equal(t, domain.VerdictReal, report.Consensus.Verdict)
	assert.Equal(t, 66, report.Consensus.Confidence)
	assert.True(t, report.Consensus.IsFinalized)
	assert.Equal(t, 10, report.Votes.Total)
}

func TestConsensusCommand_Default(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "consensus", "--ai", "80", "--real", "7", "--fake", "2", "--uncertain", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "77")
}

func TestConsensusCommand_InvalidScore(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "consensus", "--ai", "120")
	assert.Error(t, err)
}

func TestConsensusCommand_NegativeVotes(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "consensus", "--ai", "50", "--real", "-1")
	assert.Error(t, err)
}

func TestConsensusCommand_NewsWithoutChain(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "consensus", "--news", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain not configured")
}

func TestConsensusCommand_NewsExcludesManualInputs(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "consensus", "--news", "1", "--ai", "50")
	assert.Error(t, err)
}

func TestDynamicCommand_NoVotes(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "dynamic", "--ai", "60", "--json")
	require.NoError(t, err)

	var d domain.DynamicScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 60, d.DynamicScore)
	assert.Equal(t, domain.ConfidenceLow, d.Confidence)
}

func TestDynamicCommand_Default(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "dynamic", "--ai", "80", "--real", "7", "--fake", "2", "--uncertain", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "High Confidence")
}

func TestNewsCommand_WithoutChain(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "news", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain not configured")
}

func TestNewsCommand_RequiresID(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "news")
	assert.Error(t, err)
}

func TestScoreCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "assessment.json", `{"confidence": 50}`)

	out, err := runCLI(t, dir, "score", "--assessment", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"score": 40`)
	assert.Contains(t, out, `"likely_fake"`)
}

func TestScoreCommand_Badge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "assessment.json", `{"confidence": 50}`)

	out, err := runCLI(t, dir, "score", "--assessment", path, "--badge")
	require.NoError(t, err)
	assert.Contains(t, out, "img.shields.io")
	assert.Contains(t, out, "credibility-40%2F100-orange")
}

func TestScoreCommand_RequiresAssessment(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "score")
	assert.Error(t, err)
}

func TestScoreCommand_InvalidAssessment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "assessment.json", `not json`)

	_, err := runCLI(t, dir, "score", "--assessment", path)
	assert.Error(t, err)
}

func TestAnalyzeCommand_FallbackWithoutModel(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "analyze", articleText, "--title", "Budget figures confirmed", "--url", "https://www.reuters.com/budget", "--json")
	require.NoError(t, err)

	var a domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, 50, a.Score)
	assert.Equal(t, domain.AnalysisUncertain, a.Verdict)
	assert.Contains(t, a.Flags, domain.AnalysisErrorFlag)
	assert.Equal(t, domain.ContentHash("Budget figures confirmed", articleText, "https://www.reuters.com/budget"), a.ContentHash)
}

func TestAnalyzeCommand_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "article.txt", articleText+"\n")

	out, err := runCLI(t, dir, "analyze", "--file", path, "--title", "Budget", "--url", "https://example.com/a", "--badge")
	require.NoError(t, err)
	assert.Contains(t, out, "credibility-50%2F100-orange")
}

func TestAnalyzeCommand_CIFails(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "analyze", articleText, "--title", "Budget", "--url", "https://example.com/a", "--ci", "--min", "60")
	assert.Error(t, err)
}

func TestAnalyzeCommand_InvalidRequest(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "analyze", "too short", "--title", "Budget", "--url", "https://example.com/a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")
}

func TestAnalyzeCommand_RequiresContent(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "analyze", "--title", "Budget")
	assert.Error(t, err)
}

func TestAnalyzeCommand_PersistsContentAndHistory(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "analyze", articleText, "--title", "Budget figures confirmed", "--url", "https://example.com/a")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "history", "--json")
	require.NoError(t, err)
	var entries []domain.AnalysisEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Budget figures confirmed", entries[0].Title)
	assert.Equal(t, 50, entries[0].Score)

	out, err = runCLI(t, dir, "content", entries[0].ContentHash)
	require.NoError(t, err)
	assert.Contains(t, out, articleText)

	out, err = runCLI(t, dir, "content", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, `"totalItems": 1`)
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "history", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestContentCommand_InvalidHash(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "content", "abc")
	assert.Error(t, err)
}

func TestContentCommand_NotFound(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "content", "0x"+string(bytes.Repeat([]byte("ab"), 32)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batch.json", `[
		{"content": "`+articleText+`", "title": "Budget", "sourceUrl": "https://example.com/a"},
		{"content": "too short", "title": "Short", "sourceUrl": "https://example.com/b"}
	]`)

	out, err := runCLI(t, dir, "batch", path)
	require.NoError(t, err)

	var items []application.BatchItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.True(t, items[0].Success)
	assert.False(t, items[1].Success)
	assert.NotEmpty(t, items[1].Error)
}

func TestBatchCommand_Empty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batch.json", `[]`)

	_, err := runCLI(t, dir, "batch", path)
	assert.Error(t, err)
}

func TestQuickCommand_DefaultsWithoutModel(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "quick", articleText)
	require.NoError(t, err)
	assert.Equal(t, "50/100\n", out)
}

func TestClaimsCommand_EmptyWithoutModel(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "claims", articleText, "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestPatternsCommand_DefaultsWithoutModel(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "patterns", articleText, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"clickbait": false`)
}

func TestInvalidConfigIsReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".credence.yaml", "search:\n  provider: bing\n")

	_, err := runCLI(t, dir, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .credence.yaml")
}
