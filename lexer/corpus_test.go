package lexer

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type corpusToken struct {
	Type string `yaml:"type"`
	Line int    `yaml:"line"`
	Col  int    `yaml:"col"`
	Text string `yaml:"text"`
}

type corpusCase struct {
	Name        string        `yaml:"name"`
	Input       string        `yaml:"input"`
	Tokens      []corpusToken `yaml:"tokens"`
	Diagnostics []string      `yaml:"diagnostics"`
}

// TestScanCorpus runs the scanner over the cases in testdata/corpus.yaml and
// compares the full token stream and diagnostics against the recorded ones.
func TestScanCorpus(t *testing.T) {
	raw, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)
	var cases []corpusCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			var diags ErrorList
			s := NewWithReporter("corpus.yasl", strings.NewReader(c.Input), &diags)
			var got []corpusToken
			for {
				tok := s.Next()
				if tok.Type == EOFToken {
					break
				}
				got = append(got, corpusToken{
					Type: tok.Type.String(),
					Line: tok.Pos.Line,
					Col:  tok.Pos.Col,
					Text: tok.Text,
				})
			}
			assert.Equal(t, c.Tokens, got)

			var gotDiags []string
			for _, e := range diags {
				gotDiags = append(gotDiags, fmt.Sprintf("%d:%d %s", e.Pos.Line, e.Pos.Col, e.Message))
			}
			assert.Equal(t, c.Diagnostics, gotDiags)
		})
	}
}
