package config

import (
	"errors"
	"testing"

	domainconfig "github.com/felixgeelhaar/pdftool/domain/config"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("PDFTOOL_ROOT", "/srv/docs")
	t.Setenv("PDFTOOL_EMPTY", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bracket syntax", input: "${PDFTOOL_ROOT}", want: "/srv/docs"},
		{name: "dollar syntax", input: "$PDFTOOL_ROOT", want: "/srv/docs"},
		{name: "embedded", input: "root_dir: ${PDFTOOL_ROOT}/in", want: "root_dir: /srv/docs/in"},
		{name: "default when unset", input: "${PDFTOOL_UNSET_VAR:-info}", want: "info"},
		{name: "default when empty", input: "${PDFTOOL_EMPTY:-json}", want: "json"},
		{name: "value wins over default", input: "${PDFTOOL_ROOT:-/tmp}", want: "/srv/docs"},
		{name: "unset becomes empty", input: "a${PDFTOOL_UNSET_VAR}b", want: "ab"},
		{name: "no variables", input: "transport: stdio", want: "transport: stdio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("PDFTOOL_LEVEL", "debug")

	got, err := ExpandEnvStrict("level: ${PDFTOOL_LEVEL}")
	if err != nil {
		t.Fatalf("ExpandEnvStrict() error = %v", err)
	}
	if got != "level: debug" {
		t.Errorf("ExpandEnvStrict() = %q", got)
	}

	for _, input := range []string{"${PDFTOOL_UNSET_VAR}", "$PDFTOOL_UNSET_VAR", "${PDFTOOL_UNSET_VAR:?root dir required}"} {
		if _, err := ExpandEnvStrict(input); !errors.Is(err, domainconfig.ErrMissingEnvVar) {
			t.Errorf("ExpandEnvStrict(%q) error = %v, want ErrMissingEnvVar", input, err)
		}
	}
}

func TestExpandRequiredNonStrict(t *testing.T) {
	e := &envExpander{}
	if _, err := e.Expand("${PDFTOOL_UNSET_VAR:?must be set}"); !errors.Is(err, domainconfig.ErrMissingEnvVar) {
		t.Errorf("Expand() error = %v, want ErrMissingEnvVar", err)
	}
}
