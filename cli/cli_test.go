package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/pinto/match"
	"github.com/robinvdvleuten/pinto/template"
)

const testJournal = `2020-06-01 * "Kamps Backstube" "Breakfast rolls"
    Expenses:Food:Groceries  3.45 EUR
    Assets:Checking

2020-06-10 * "REWE" "Groceries"
    Expenses:Food:Groceries  25.00 EUR
    Assets:Checking
`

const testTemplates = `
groceries:
  payee: REWE
  lines:
    - account: Expenses:Food:Groceries
    - account: Assets:Checking
      no_value: true
`

func testWorkspace(t *testing.T) *Globals {
	t.Helper()
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, journalFilename), []byte(testJournal), 0600)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, templatesFilename), []byte(testTemplates), 0600)
	assert.NoError(t, err)

	return &Globals{Directory: dir, Threshold: 70, MaxCandidates: 5}
}

func TestOpenWorkspace(t *testing.T) {
	globals := testWorkspace(t)

	ws, err := openWorkspace(context.Background(), globals)
	assert.NoError(t, err)

	assert.Equal(t, 2, len(ws.Transactions))
	assert.Equal(t, []string{"Kamps Backstube", "REWE"}, ws.Corpus.Payees)
	assert.Equal(t, 1, ws.Templates.Len())
}

func TestOpenWorkspaceMissingFiles(t *testing.T) {
	globals := &Globals{Directory: t.TempDir(), Threshold: 70, MaxCandidates: 5}

	ws, err := openWorkspace(context.Background(), globals)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(ws.Transactions))
	assert.Equal(t, 0, ws.Templates.Len())
}

func TestOpenWorkspaceNoDirectory(t *testing.T) {
	_, err := openWorkspace(context.Background(), &Globals{})

	cmdErr, ok := err.(*CommandError)
	assert.True(t, ok, "want CommandError, got %v", err)
	assert.Equal(t, 1, cmdErr.ExitCode)
}

func TestFindTemplateExact(t *testing.T) {
	store, err := template.Parse([]byte(testTemplates))
	assert.NoError(t, err)

	tmpl, candidates, err := findTemplate(store, "groceries", match.DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(candidates))
	assert.Equal(t, "groceries", tmpl.Label)
}

func TestFindTemplateFuzzy(t *testing.T) {
	store, err := template.Parse([]byte(testTemplates))
	assert.NoError(t, err)

	// A case-insensitive hit resolves without a prompt.
	tmpl, candidates, err := findTemplate(store, "GROCERIES", match.DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(candidates))
	assert.Equal(t, "groceries", tmpl.Label)

	// A near miss surfaces the close labels for the user to pick from.
	tmpl, candidates, err = findTemplate(store, "grocerie", match.DefaultConfig())
	assert.NoError(t, err)
	assert.Zero(t, tmpl)
	assert.Equal(t, []string{"groceries"}, candidates)
}

func TestFindTemplateCandidates(t *testing.T) {
	store, err := template.Parse([]byte(`
food-out:
  lines: [{account: Expenses:Food}]
food-in:
  lines: [{account: Expenses:Food}]
`))
	assert.NoError(t, err)

	tmpl, candidates, err := findTemplate(store, "food-o", match.DefaultConfig())
	assert.NoError(t, err)
	assert.Zero(t, tmpl)
	assert.Equal(t, []string{"food-out", "food-in"}, candidates)
}

func TestFindTemplateNothingClose(t *testing.T) {
	store, err := template.Parse([]byte(testTemplates))
	assert.NoError(t, err)

	_, _, err = findTemplate(store, "zzzzzz", match.DefaultConfig())

	var notFound *template.TemplateNotFoundError
	assert.True(t, errors.As(err, &notFound), "want TemplateNotFoundError, got %v", err)
}

func TestSearchValues(t *testing.T) {
	values := []string{"Expenses:Food:Groceries", "Expenses:Transport", "Assets:Checking"}

	got := searchValues("Expenses:Food:Groceries", values, match.DefaultConfig(), 10)
	assert.Equal(t, []string{"Expenses:Food:Groceries"}, got)

	got = searchValues("nothing like this", values, match.DefaultConfig(), 10)
	assert.Equal(t, 0, len(got))
}

func TestCommandError(t *testing.T) {
	err := commandErrorf("boom %d", 7)
	assert.Equal(t, "boom 7", err.Error())
	assert.Equal(t, 1, err.ExitCode)
}
