package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/hlrange/internal/iotest"
	"go.abhg.dev/hlrange/internal/linerange"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			want: params{
				Format: htmlFormat,
				Style:  "plain",
			},
		},
		{
			desc: "many arguments",
			give: []string{
				"-debug=log.txt",
				"-out", "build/out.html",
				"-classes",
				"-css",
				"-style", "monokai",
				"README.md",
				"docs/guide.md",
			},
			want: params{
				Debug:      "log.txt",
				OutputFile: "build/out.html",
				Format:     htmlFormat,
				Style:      "monokai",
				Classes:    true,
				CSS:        "-",
				Inputs:     []string{"README.md", "docs/guide.md"},
			},
		},
		{
			desc: "lang implies raw",
			give: []string{"-lang", "rust", "-format=TEXT", "main.rs"},
			want: params{
				Raw:    true,
				Lang:   "rust",
				Format: textFormat,
				Style:  "plain",
				Inputs: []string{"main.rs"},
			},
		},
		{
			desc: "dialects",
			give: []string{
				"-dialect", "vue=markup",
				"-dialect=nim=hash",
				"-format", "yaml",
				"-",
			},
			want: params{
				Dialects: []langDialect{
					{Lang: "vue", Dialect: linerange.MarkupDialect},
					{Lang: "nim", Dialect: linerange.HashDialect},
				},
				Format: yamlFormat,
				Style:  "plain",
				Inputs: []string{"-"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_configFile(t *testing.T) {
	t.Parallel()

	config := filepath.Join(t.TempDir(), "hlrange.conf")
	require.NoError(t, os.WriteFile(config, []byte(
		"# Defaults for this project.\n"+
			"style monokai\n"+
			"format text\n"+
			"classes\n"+
			"dialect svelte=markup\n",
	), 0o644))

	got, err := (&cliParser{
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-config", config, "-format=yaml", "doc.md"})
	require.NoError(t, err)

	assert.Equal(t, params{
		config:  config,
		Style:   "monokai",
		Format:  yamlFormat, // command line wins
		Classes: true,
		Dialects: []langDialect{
			{Lang: "svelte", Dialect: linerange.MarkupDialect},
		},
		Inputs: []string{"doc.md"},
	}, *got)
}

func TestCLIParser_environment(t *testing.T) {
	t.Setenv("HLRANGE_FORMAT", "text")
	t.Setenv("HLRANGE_STYLE", "github")
	t.Setenv("HLRANGE_DIALECT", "vue=markup,nim=hash")

	got, err := (&cliParser{
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-style", "dracula", "doc.md"})
	require.NoError(t, err)

	assert.Equal(t, textFormat, got.Format)
	assert.Equal(t, "dracula", got.Style, "command line wins")
	assert.Equal(t, []langDialect{
		{Lang: "vue", Dialect: linerange.MarkupDialect},
		{Lang: "nim", Dialect: linerange.HashDialect},
	}, got.Dialects)
}

func TestCLIParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string // expected messages
	}{
		{
			desc: "unrecognized",
			give: []string{"-foo=bar", "doc.md"},
			want: "flag provided but not defined: -foo",
		},
		{
			desc: "bad format",
			give: []string{"-format", "pdf"},
			want: `unknown format "pdf"`,
		},
		{
			desc: "bad dialect",
			give: []string{"-dialect", "js=slashes"},
			want: `unknown comment dialect "slashes"`,
		},
		{
			desc: "css without classes",
			give: []string{"-css=out.css"},
			want: "-css requires -classes",
		},
		{
			desc: "missing config file",
			give: []string{"-config", "does-not-exist.conf"},
			want: "does-not-exist.conf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{Stderr: &stderr}).Parse(tt.give)
			require.Error(t, err)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestCLIParser_help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string
	}{
		{desc: "default", give: []string{"-h"}, want: "USAGE: hlrange"},
		{desc: "topic", give: []string{"-help=directives"}, want: "highlight-next-line"},
		{desc: "topic argument", give: []string{"-h", "config"}, want: "HLRANGE_"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{Stderr: &stderr}).Parse(tt.give)
			assert.ErrorIs(t, err, errHelp)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestLangDialect(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(iotest.Writer(t))

	var ld langDialect
	fset.Var(&ld, "x", "")
	require.NoError(t, fset.Parse([]string{
		"-x", " svelte =markup",
	}))

	assert.Equal(t, "svelte", ld.Lang)
	assert.Equal(t, linerange.MarkupDialect, ld.Dialect)

	assert.NotNil(t, ld.Get(), "Get")
	assert.Equal(t, "svelte=markup", ld.String())
}

func TestLangDialect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string // expected error
	}{
		{
			desc: "no '='",
			give: "svelte",
			want: "expected form 'lang=dialect'",
		},
		{
			desc: "no language",
			give: "=hash",
			want: "expected form 'lang=dialect'",
		},
		{
			desc: "unknown dialect",
			give: "svelte=html",
			want: `unknown comment dialect "html"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
			fset.SetOutput(iotest.Writer(t))

			fset.Var(new(langDialect), "x", "")
			err := fset.Parse([]string{"-x", tt.give})
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
