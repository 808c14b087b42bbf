package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/matzehuels/groundgrid/pkg/buildinfo"
	"github.com/matzehuels/groundgrid/pkg/config"
	"github.com/matzehuels/groundgrid/pkg/errors"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()

	for _, name := range []string{"calc", "render", "config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered (err = %v)", name, err)
		}
	}
	for _, flag := range []string{"wires", "length", "overhang", "output", "type", "format", "no-open", "summary-format"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("root command missing --%s", flag)
		}
	}
}

func TestVersion(t *testing.T) {
	tc := newTestCLI(t, "")
	if err := tc.run("--version"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(tc.out.String(), "groundgrid "+buildinfo.Version) {
		t.Errorf("--version output = %q", tc.out.String())
	}
}

func TestConfigInitShowPath(t *testing.T) {
	tc := newTestCLI(t, "")

	if err := tc.run("config", "path"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tc.out.String(), tc.config) {
		t.Errorf("config path output = %q, want %q", tc.out.String(), tc.config)
	}

	if err := tc.run("config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := config.Load(tc.config); err != nil {
		t.Errorf("written config does not load: %v", err)
	}

	err := tc.run("config", "init")
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("second init error = %v, want %v", err, errors.ErrCodeIO)
	}
	if err := tc.run("config", "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}

	tc.out.Reset()
	if err := tc.run("config", "show"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[input]", `length_unit = "ft"`, "[output]", `formats = ["png"]`, "[diagram]"} {
		if !strings.Contains(tc.out.String(), want) {
			t.Errorf("config show missing %q:\n%s", want, tc.out.String())
		}
	}
}

func TestConfigShowInvalid(t *testing.T) {
	tc := newTestCLI(t, "")
	if err := os.WriteFile(tc.config, []byte("[output]\nviz = \"tower\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := tc.run("config", "show")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("config show error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		tc := newTestCLI(t, "")
		if err := tc.run("completion", shell); err != nil {
			t.Fatalf("completion %s error = %v", shell, err)
		}
		if !strings.Contains(tc.out.String(), "groundgrid") {
			t.Errorf("completion %s output does not mention the command", shell)
		}
	}
}

func TestRenderSavedLayout(t *testing.T) {
	tc := newTestCLI(t, "")
	saved := tc.path("site.png")

	err := tc.run("calc", "--wires", "6", "--length", "10", "--overhang", "6", "-f", "yaml", "-o", saved)
	if err != nil {
		t.Fatalf("calc error = %v", err)
	}

	tc.out.Reset()
	if err := tc.run("render", tc.path("site.yaml"), "-f", "svg,dot"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, name := range []string{"site.svg", "site.dot"} {
		if _, err := os.Stat(tc.path(name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if want := "Image saved and opened as '" + tc.path("site.svg") + "'."; !strings.Contains(tc.out.String(), want) {
		t.Errorf("output missing %q:\n%s", want, tc.out.String())
	}
}

func TestRenderRejectsUnknownInput(t *testing.T) {
	tc := newTestCLI(t, "")
	err := tc.run("render", tc.path("site.csv"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("render error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}
