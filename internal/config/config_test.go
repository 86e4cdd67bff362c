package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Load_decodesAndFillsDefaults(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ductus.toml")
	contents := "grammar_file = \"g.txt\"\nlex_file = \"l.txt\"\nminimize = true\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("g.txt", cfg.GrammarFile)
	assert.Equal("l.txt", cfg.LexFile)
	assert.True(cfg.Minimize)
	assert.Equal(VerbositySummary, cfg.ConflictVerbosity)
}

func Test_Config_Validate_requiresGrammarAndLexFiles(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{}.FillDefaults()
	assert.Error(cfg.Validate())

	cfg.GrammarFile = "g.txt"
	assert.Error(cfg.Validate())

	cfg.LexFile = "l.txt"
	assert.NoError(cfg.Validate())
}

func Test_Config_Validate_rejectsUnknownVerbosity(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{GrammarFile: "g.txt", LexFile: "l.txt", ConflictVerbosity: "loud"}
	assert.Error(cfg.Validate())
}
