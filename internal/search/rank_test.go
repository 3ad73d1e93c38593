package search

import (
	"strings"
	"testing"

	"github.com/atomicstack/chopsticks/internal/snippet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []snippet.Snippet {
	return []snippet.Snippet{
		{Cmd: "ls -la", Description: "list all files"},
		{Cmd: "git status --short", Description: "show working tree status"},
		{Cmd: "docker ps -a", Description: "list containers"},
		{Cmd: "git log --oneline", Description: "compact history"},
	}
}

func TestRankSingleSnippet(t *testing.T) {
	t.Parallel()

	list := []snippet.Snippet{{Cmd: "echo hi", Description: "greet"}}

	Rank("greet", list)
	require.Len(t, list, 1)
	assert.Equal(t, "echo hi", list[0].Cmd)
	assert.Greater(t, list[0].Priority, int64(0))

	Rank("xyz", list)
	require.Len(t, list, 1)
	assert.Equal(t, "echo hi", list[0].Cmd)
	assert.Equal(t, int64(0), list[0].Priority)
}

func TestRankIsDeterministic(t *testing.T) {
	t.Parallel()

	first := fixtures()
	second := fixtures()
	Rank("git st", first)
	Rank("git st", second)
	assert.Equal(t, first, second)

	again := snippet.Clone(first)
	Rank("git st", again)
	assert.Equal(t, first, again)
}

func TestRankOrdersByDescendingScore(t *testing.T) {
	t.Parallel()

	list := fixtures()
	Rank("git status", list)
	assert.Equal(t, "git status --short", list[0].Cmd)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Priority, list[i].Priority)
	}
}

func TestRankEmptyQueryKeepsOrder(t *testing.T) {
	t.Parallel()

	list := fixtures()
	Rank("", list)
	assert.Equal(t, fixtures()[0].Cmd, list[0].Cmd)
	for i, s := range list {
		assert.Equal(t, fixtures()[i].Cmd, s.Cmd)
		assert.Equal(t, int64(0), s.Priority)
	}

	Rank("   ", list)
	for i, s := range list {
		assert.Equal(t, fixtures()[i].Cmd, s.Cmd)
	}
}

func TestScoreAccumulatesAcrossTokens(t *testing.T) {
	t.Parallel()

	s := snippet.Snippet{Cmd: "kubectl get pods", Description: "list pods in namespace"}
	one := Score("pods", s)
	two := Score("pods get", s)
	three := Score("pods get namespace", s)
	assert.Greater(t, one, int64(0))
	assert.GreaterOrEqual(t, two, one)
	assert.GreaterOrEqual(t, three, two)
	assert.Equal(t, one, Score("pods zzzz", s))
}

func TestScoreFullMatchBeatsPartialMatch(t *testing.T) {
	t.Parallel()

	full := snippet.Snippet{Cmd: "tar czf backup.tgz", Description: "tar backup archive"}
	partial := snippet.Snippet{Cmd: "tar xzf release.tgz", Description: "tar extract archive"}
	query := "tar backup"
	assert.GreaterOrEqual(t, Score(query, full), Score(query, partial))
}

func TestFieldScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), FieldScore("", "anything"))
	assert.Equal(t, int64(0), FieldScore("abc", ""))
	assert.Equal(t, int64(0), FieldScore("zz", "abc"))
	assert.Greater(t, FieldScore("GIT", "git status"), int64(0))
	assert.Greater(t, FieldScore("git", "git"), FieldScore("gt", "git"))
}

func TestScoreLongFullMatchBeatsShortPartialMatch(t *testing.T) {
	t.Parallel()

	full := snippet.Snippet{
		Cmd:         "docker compose up --build --remove-orphans --detach",
		Description: "bring up the docker development stack in the background",
	}
	subset := snippet.Snippet{Cmd: "docker", Description: "docker"}
	query := "docker up"

	assert.Greater(t, Score(query, full), Score(query, subset))

	list := []snippet.Snippet{subset, full}
	Rank(query, list)
	assert.Equal(t, full.Cmd, list[0].Cmd)
}

func TestScoreIgnoresFieldLength(t *testing.T) {
	t.Parallel()

	short := FieldScore("tar", "tar")
	long := FieldScore("tar", "tar "+strings.Repeat("--verbose ", 40))
	assert.Equal(t, short, long)
}

func TestScoreMonotonicInMatchedTokens(t *testing.T) {
	t.Parallel()

	tokens := []string{"kubectl", "rollout", "restart", "deployment", "api"}
	full := snippet.Snippet{
		Cmd:         "kubectl rollout restart deployment/api --namespace production " + strings.Repeat("-v ", 30),
		Description: "kubectl rollout restart of the api deployment in production",
	}
	for n := 1; n < len(tokens); n++ {
		query := strings.Join(tokens, " ")
		partial := snippet.Snippet{
			Cmd:         strings.Join(tokens[:n], " "),
			Description: strings.Join(tokens[:n], " "),
		}
		assert.GreaterOrEqual(t, Score(query, full), Score(query, partial), "subset of %d tokens", n)
	}
}
