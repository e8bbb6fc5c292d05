//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

func TestCheckEligibility(t *testing.T) {
	t.Parallel()

	t.Run("should classify specifiers first-match-wins", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			specifier  []entities.SpecifierClause
			skipSet    map[string]bool
			hidden     bool
			eligible   bool
			skipReason entities.SkipReason
		}{
			{
				name:     "unconstrained requirement is eligible",
				eligible: true,
			},
			{
				name: "exact pin is eligible",
				specifier: []entities.SpecifierClause{
					{Operator: "==", Version: "2.0"},
				},
				eligible: true,
			},
			{
				name: "single non-exact clause is a range",
				specifier: []entities.SpecifierClause{
					{Operator: "<", Version: "2.0"},
				},
				eligible:   false,
				skipReason: entities.SkipRange,
			},
			{
				name: "multiple clauses are a range",
				specifier: []entities.SpecifierClause{
					{Operator: "<", Version: "2.0"},
					{Operator: ">", Version: "1.0"},
				},
				eligible:   false,
				skipReason: entities.SkipRange,
			},
			{
				name:       "skip set wins over everything",
				skipSet:    map[string]bool{"foo": true},
				hidden:     true,
				eligible:   false,
				skipReason: entities.SkipExplicit,
			},
			{
				name: "hidden wins over range",
				specifier: []entities.SpecifierClause{
					{Operator: "<", Version: "2.0"},
				},
				hidden:     true,
				eligible:   false,
				skipReason: entities.SkipHidden,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				req := &entities.ParsedRequirement{Name: "foo", Specifier: tt.specifier}
				info := &entities.RegistryInfo{Name: "foo", Hidden: tt.hidden}

				// when
				eligible, reason := entities.CheckEligibility(req, tt.skipSet, info)

				// then
				assert.Equal(t, tt.eligible, eligible)
				assert.Equal(t, tt.skipReason, reason)
			})
		}
	})

	t.Run("should tolerate missing registry info for skipped packages", func(t *testing.T) {
		t.Parallel()

		// given
		req := &entities.ParsedRequirement{Name: "foo"}

		// when
		eligible, reason := entities.CheckEligibility(req, map[string]bool{"foo": true}, nil)

		// then
		assert.False(t, eligible)
		assert.Equal(t, entities.SkipExplicit, reason)
	})
}
