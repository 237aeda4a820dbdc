package graph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/identicount/counter/graph"
)

func testReport() *graph.Report {
	return &graph.Report{
		Files: []*graph.File{
			{
				Path: "a.py",
				Identifiers: []graph.Identifier{
					{Name: "city", Kind: graph.Variable, Line: 1},
					{Name: "greeting", Kind: graph.FuncOrMethod, Line: 2},
					{Name: "name", Kind: graph.Parameter, Line: 2},
					{Name: "text", Kind: graph.Variable, Line: 3},
				},
			},
			{
				Path: "b.py",
				Identifiers: []graph.Identifier{
					{Name: "Person", Kind: graph.Class, Line: 1},
				},
			},
		},
	}
}

func TestReport_Render(t *testing.T) {
	tests := []struct {
		description string
		verbosity   int
		expected    string
	}{
		{
			description: "count per file",
			verbosity:   0,
			expected:    "a.py: 4\nb.py: 1\n",
		},
		{
			description: "per-kind summary in first-seen order",
			verbosity:   1,
			expected:    "a.py: variable 2\na.py: func_or_method 1\na.py: parameter 1\nb.py: class 1\n",
		},
		{
			description: "one line per identifier",
			verbosity:   2,
			expected:    "a.py:1: variable 'city'\na.py:2: func_or_method 'greeting'\na.py:2: parameter 'name'\na.py:3: variable 'text'\nb.py:1: class 'Person'\n",
		},
		{
			description: "verbosity above detail stays detail",
			verbosity:   5,
			expected:    "a.py:1: variable 'city'\na.py:2: func_or_method 'greeting'\na.py:2: parameter 'name'\na.py:3: variable 'text'\nb.py:1: class 'Person'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			var buf bytes.Buffer
			testReport().Render(&buf, tt.verbosity)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestReport_Totals(t *testing.T) {
	report := testReport()
	assert.Equal(t, 5, report.Total())
	assert.False(t, report.Empty())
	assert.True(t, (&graph.Report{}).Empty())
}

func TestReport_YAML(t *testing.T) {
	data, err := testReport().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "path: a.py")
	assert.Contains(t, string(data), "kind: func_or_method")
}

func TestHash(t *testing.T) {
	first, err := graph.Hash([]byte("city = 'Tokyo'\n"))
	require.NoError(t, err)
	again, err := graph.Hash([]byte("city = 'Tokyo'\n"))
	require.NoError(t, err)
	other, err := graph.Hash([]byte("city = 'Osaka'\n"))
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
}
