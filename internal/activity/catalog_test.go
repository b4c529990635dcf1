package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

func TestCatalog_Size(t *testing.T) {
	assert.Len(t, All(), 27)
}

func TestCatalog_UniqueIDsAndValidEntries(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range All() {
		assert.False(t, seen[def.ID], "duplicate id %s", def.ID)
		seen[def.ID] = true

		_, err := domain.ParseStat(string(def.Stat))
		assert.NoError(t, err, "activity %s", def.ID)
		assert.Positive(t, def.BaseXP, "activity %s", def.ID)
		assert.Positive(t, def.StatGain, "activity %s", def.ID)
		assert.NotEmpty(t, def.Name, "activity %s", def.ID)
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(IDStudy)
	require.True(t, ok)
	assert.Equal(t, domain.StatKnowledge, def.Stat)
	assert.Equal(t, 1, def.StatGain)
	assert.True(t, def.UsesMinutes)

	_, ok = Lookup("underwater-basket-weaving")
	assert.False(t, ok)
}

func TestByStat_CoversEveryStat(t *testing.T) {
	total := 0
	for _, stat := range domain.AllStats {
		defs := ByStat(stat)
		assert.NotEmpty(t, defs, "stat %s", stat)
		for _, def := range defs {
			assert.Equal(t, stat, def.Stat)
		}
		total += len(defs)
	}
	assert.Equal(t, len(All()), total)
}

func TestAll_ReturnsCopy(t *testing.T) {
	defs := All()
	defs[0].BaseXP = 9999

	def, ok := Lookup(defs[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, 9999, def.BaseXP)
}

func TestIsStudyClass(t *testing.T) {
	assert.True(t, IsStudyClass(IDStudy))
	assert.True(t, IsStudyClass(IDExamPrep))
	assert.False(t, IsStudyClass("reading"))
}
