//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

func TestRewriteManifest(t *testing.T) {
	t.Parallel()

	t.Run("should replace only changed lines", func(t *testing.T) {
		t.Parallel()

		// given
		text := "# deps\nfoo==1.0.0\nbar==2.0.0\n"
		entries := entities.ParseManifest(text)
		decisions := []entities.UpdateDecision{
			{Name: "foo", LineNumber: 2, OldVersion: "1.0.0", NewVersion: "1.2.0"},
			{Name: "bar", LineNumber: 3, OldVersion: "2.0.0"},
		}

		// when
		out := entities.RewriteManifest(text, entries, decisions)

		// then
		assert.Equal(t, "# deps\nfoo==1.2.0\nbar==2.0.0\n", out)
	})

	t.Run("should keep the marker suffix on a rewritten line", func(t *testing.T) {
		t.Parallel()

		// given
		text := `foo==1.0.0; python_version < "3.8"` + "\n"
		entries := entities.ParseManifest(text)
		decisions := []entities.UpdateDecision{
			{Name: "foo", LineNumber: 1, OldVersion: "1.0.0", NewVersion: "1.2.0"},
		}

		// when
		out := entities.RewriteManifest(text, entries, decisions)

		// then
		assert.Equal(t, `foo==1.2.0; python_version < "3.8"`+"\n", out)
	})

	t.Run("should leave everything untouched without changes", func(t *testing.T) {
		t.Parallel()

		// given
		text := "# comment\nfoo==1.0.0\n\ngit+https://github.com/org/pkg.git#egg=pkg\n"
		entries := entities.ParseManifest(text)

		// when
		out := entities.RewriteManifest(text, entries, nil)

		// then
		assert.Equal(t, text, out)
	})

	t.Run("should preserve the absence of a trailing newline", func(t *testing.T) {
		t.Parallel()

		// given
		text := "foo==1.0.0"
		entries := entities.ParseManifest(text)
		decisions := []entities.UpdateDecision{
			{Name: "foo", LineNumber: 1, OldVersion: "1.0.0", NewVersion: "1.2.0"},
		}

		// when
		out := entities.RewriteManifest(text, entries, decisions)

		// then
		assert.Equal(t, "foo==1.2.0", out)
	})

	t.Run("should keep CRLF line endings on rewritten lines", func(t *testing.T) {
		t.Parallel()

		// given
		text := "# deps\r\nfoo==1.0.0\r\nbar==2.0.0\r\n"
		entries := entities.ParseManifest(text)
		decisions := []entities.UpdateDecision{
			{Name: "foo", LineNumber: 2, OldVersion: "1.0.0", NewVersion: "1.2.0"},
		}

		// when
		out := entities.RewriteManifest(text, entries, decisions)

		// then
		assert.Equal(t, "# deps\r\nfoo==1.2.0\r\nbar==2.0.0\r\n", out)
	})

	t.Run("should pin an unpinned requirement", func(t *testing.T) {
		t.Parallel()

		// given
		text := "foo\n"
		entries := entities.ParseManifest(text)
		decisions := []entities.UpdateDecision{
			{Name: "foo", LineNumber: 1, NewVersion: "1.2.0"},
		}

		// when
		out := entities.RewriteManifest(text, entries, decisions)

		// then
		assert.Equal(t, "foo==1.2.0\n", out)
	})
}

// TestRewriteManifestProperties checks the structural guarantees of the
// writer over generated manifests: the line count and order never change,
// and lines without a change decision survive byte-for-byte.
func TestRewriteManifestProperties(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	lineGen := gen.OneConstOf(
		"# pinned by tooling",
		"",
		"alpha==1.0.0",
		"beta>=2.0",
		"gamma<2.0,>1.0",
		"delta",
		"-r common.txt",
		"git+https://github.com/org/pkg.git#egg=pkg",
	)

	properties.Property("line count and order are preserved", prop.ForAll(
		func(lines []string) bool {
			text := strings.Join(lines, "\n") + "\n"
			entries := entities.ParseManifest(text)

			var decisions []entities.UpdateDecision
			for _, entry := range entries {
				if entry.IsRequirement() && entry.Requirement.PinnedVersion() != "" {
					decisions = append(decisions, entities.UpdateDecision{
						Name:       entry.Requirement.Name,
						LineNumber: entry.LineNumber,
						OldVersion: entry.Requirement.PinnedVersion(),
						NewVersion: "9.9.9",
					})
				}
			}

			out := entities.RewriteManifest(text, entries, decisions)
			return len(strings.Split(out, "\n")) == len(strings.Split(text, "\n"))
		},
		gen.SliceOf(lineGen),
	))

	properties.Property("lines without a change decision are byte-identical", prop.ForAll(
		func(lines []string) bool {
			text := strings.Join(lines, "\n") + "\n"
			entries := entities.ParseManifest(text)

			out := entities.RewriteManifest(text, entries, nil)
			return out == text
		},
		gen.SliceOf(lineGen),
	))

	properties.TestingRun(t)
}

func TestRewriteManifestIdempotency(t *testing.T) {
	t.Parallel()

	t.Run("should be stable when reapplied with the same latest versions", func(t *testing.T) {
		t.Parallel()

		// given
		text := "foo==1.0.0\nbar<2.0\n"
		entries := entities.ParseManifest(text)
		decisions := []entities.UpdateDecision{
			{Name: "foo", LineNumber: 1, OldVersion: "1.0.0", NewVersion: "1.2.0"},
			{Name: "bar", LineNumber: 2, Reason: entities.SkipRange},
		}

		// when
		once := entities.RewriteManifest(text, entries, decisions)

		secondEntries := entities.ParseManifest(once)
		require.Equal(t, "1.2.0", secondEntries[0].Requirement.PinnedVersion())
		secondDecisions := []entities.UpdateDecision{
			{Name: "foo", LineNumber: 1, OldVersion: "1.2.0"},
			{Name: "bar", LineNumber: 2, Reason: entities.SkipRange},
		}
		twice := entities.RewriteManifest(once, secondEntries, secondDecisions)

		// then
		assert.Equal(t, once, twice)
	})
}
