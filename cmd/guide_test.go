package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# nexus")
		env.contains(out, "## Commands")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nonexistent")
		if err == nil {
			t.Error("Guide(nonexistent) = nil, want error")
		}
		env.contains(out, "Available:")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		topic   string
		contain string
	}{
		{"edit", "nexus edit"},
		{"read", "nexus read"},
		{"serve", "nexus serve"},
		{"config", "nexus config"},
	}

	for _, tc := range tests {
		t.Run(tc.topic, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("guide", tc.topic)
			env.contains(out, tc.contain)
		})
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("version"), "Build Tag:")
	env.contains(env.runStdout("version", "-o", "json"), `"go_version"`)
}
