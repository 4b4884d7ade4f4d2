package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultRules(), cfg.Rules())
	assert.Equal(t, "blackjack.log", cfg.LogFile())
	assert.False(t, cfg.Rules().Peek)
}

func TestParse(t *testing.T) {
	src := `
table {
  bust_limit    = 31
  soft_limit    = 27
  initial_cards = 3
  packs         = 6
  stake         = 500
  peek          = true
  dealer_name   = "Severus"
}

log {
  level = "DEBUG"
  file  = "table.log"
}
`
	cfg, err := Parse([]byte(src), "test.hcl")
	require.NoError(t, err)

	rules := cfg.Rules()
	assert.Equal(t, 31, rules.BustLimit)
	assert.Equal(t, 27, rules.SoftLimit)
	assert.Equal(t, 3, rules.InitialCards)
	assert.Equal(t, 6, rules.Packs)
	assert.Equal(t, 500, rules.Stake)
	assert.True(t, rules.Peek)
	assert.Equal(t, "Severus", rules.DealerName)
	assert.Equal(t, game.DefaultRules().LoanShark, rules.LoanShark)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
	assert.Equal(t, "table.log", cfg.LogFile())
}

func TestParsePartialBlocks(t *testing.T) {
	cfg, err := Parse([]byte(`table { stake = 250 }`), "test.hcl")
	require.NoError(t, err)

	rules := cfg.Rules()
	assert.Equal(t, 250, rules.Stake)
	assert.Equal(t, 21, rules.BustLimit)
	assert.False(t, rules.Peek)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "blackjack.log", cfg.LogFile())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: `table {`},
		{name: "unknown attribute", src: `table { blinds = 2 }`},
		{name: "soft limit above bust limit", src: `table { soft_limit = 22 }`},
		{name: "negative stake", src: `table { stake = -1 }`},
		{name: "bad log level", src: `log { level = "loud" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`table { packs = 2 }`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Rules().Packs)
}

func TestEmptyLogFileDisablesFileLog(t *testing.T) {
	cfg, err := Parse([]byte(`log { file = "" }`), "test.hcl")
	require.NoError(t, err)
	assert.Empty(t, cfg.LogFile())

	cfg.SetLogFile("override.log")
	assert.Equal(t, "override.log", cfg.LogFile())
}
