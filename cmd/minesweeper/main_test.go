package main

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("MINESWEEPER_DIFFICULTY", "")
	t.Setenv("MINESWEEPER_TIME_LIMIT", "")
	t.Setenv("MINESWEEPER_LOG_LEVEL", "")

	opts := parseFlags(nil)
	if opts.game.Difficulty != "easy" {
		t.Errorf("Difficulty = %q, want easy", opts.game.Difficulty)
	}
	if opts.game.TimeLimit != 0 {
		t.Errorf("TimeLimit = %d, want 0", opts.game.TimeLimit)
	}
	if opts.logLevel != "info" {
		t.Errorf("logLevel = %q, want info", opts.logLevel)
	}
}

func TestParseFlagsEnvAndArgs(t *testing.T) {
	t.Setenv("MINESWEEPER_DIFFICULTY", "hard")
	t.Setenv("MINESWEEPER_TIME_LIMIT", "120")

	opts := parseFlags([]string{"-seed", "42", "-mines", "50"})
	if opts.game.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, want hard", opts.game.Difficulty)
	}
	if opts.game.TimeLimit != 120 {
		t.Errorf("TimeLimit = %d, want 120", opts.game.TimeLimit)
	}
	if opts.game.Seed != 42 || opts.game.Custom.Mines != 50 {
		t.Errorf("Seed = %d, Mines = %d, want 42, 50", opts.game.Seed, opts.game.Custom.Mines)
	}
}

func TestParseFlagsCustomDefaultsMines(t *testing.T) {
	opts := parseFlags([]string{"-difficulty", "custom", "-width", "12", "-height", "8"})
	if opts.game.Custom.Width != 12 || opts.game.Custom.Height != 8 {
		t.Errorf("Custom = %+v, want 12x8", opts.game.Custom)
	}
	if opts.game.Custom.Mines != 10 {
		t.Errorf("Custom.Mines = %d, want 10", opts.game.Custom.Mines)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("MINESWEEPER_TEST_INT", "abc")
	if got := envInt("MINESWEEPER_TEST_INT", 7); got != 7 {
		t.Errorf("envInt(invalid) = %d, want fallback 7", got)
	}
	t.Setenv("MINESWEEPER_TEST_INT", "3")
	if got := envInt("MINESWEEPER_TEST_INT", 7); got != 3 {
		t.Errorf("envInt() = %d, want 3", got)
	}
}
