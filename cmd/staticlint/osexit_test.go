package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOSExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OSExitAnalyzer, "exitcheck", "notmain")
}

func TestAnalyzers(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range analyzers() {
		assert.False(t, seen[a.Name], "analyzer %s registered twice", a.Name)
		seen[a.Name] = true
	}

	for _, name := range []string{"osexit", "nilerr", "bodyclose", "ST1005", "SA1000", "printf"} {
		assert.True(t, seen[name], "analyzer %s is missing", name)
	}
}
