package cmd

import "testing"

func TestCommandRegistration(t *testing.T) {
	want := []string{"configure", "options", "estimate", "snippet", "config", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %q to be registered", name)
		}
	}
}

func TestCommandGroups(t *testing.T) {
	groups := map[string]string{
		"configure": groupCore,
		"options":   groupCore,
		"estimate":  groupCore,
		"snippet":   groupCore,
		"config":    groupSetup,
		"version":   groupSetup,
	}
	for _, c := range rootCmd.Commands() {
		want, ok := groups[c.Name()]
		if !ok {
			continue
		}
		if c.GroupID != want {
			t.Errorf("command %q in group %q, want %q", c.Name(), c.GroupID, want)
		}
	}
}

func TestCheckTERM(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if err := checkTERM(); err == nil {
		t.Error("expected error for TERM=dumb")
	}

	t.Setenv("TERM", "xterm-256color")
	if err := checkTERM(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShouldDisableColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !shouldDisableColors() {
		t.Error("NO_COLOR should disable colors")
	}
}
