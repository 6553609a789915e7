package glycan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBonds_LinearChain(t *testing.T) {
	t.Parallel()
	got := ExtractBonds("Gal(b1-4)GlcNAc(b1-2)Man")
	assert.Equal(t, []string{
		"Gal*b1-4*GlcNAc",
		"GlcNAc*b1-2*Man",
	}, got)
}

func TestExtractBonds_SingleBranch(t *testing.T) {
	t.Parallel()
	got := ExtractBonds("Gal(b1-4)[Fuc(a1-3)]GlcNAc")
	assert.Equal(t, []string{
		"Gal*b1-4*GlcNAc",
		"Fuc*a1-3*GlcNAc",
	}, got)
}

func TestExtractBonds_AdjacentBranches(t *testing.T) {
	t.Parallel()
	got := ExtractBonds("Gal(b1-4)[Fuc(a1-3)][Xyl(b1-2)]GlcNAc")
	assert.Equal(t, []string{
		"Gal*b1-4*GlcNAc",
		"Fuc*a1-3*GlcNAc",
		"Xyl*b1-2*GlcNAc",
	}, got)
}

func TestExtractBonds_NestedBranch(t *testing.T) {
	t.Parallel()
	got := ExtractBonds("Gal(b1-4)[Neu5Ac(a2-3)Gal(b1-3)[Fuc(a1-4)]GlcNAc(b1-6)]GalNAc")
	assert.Equal(t, []string{
		"Neu5Ac*a2-3*Gal",
		"Gal*b1-3*GlcNAc",
		"Fuc*a1-4*GlcNAc",
		"Gal*b1-4*GalNAc",
		"GlcNAc*b1-6*GalNAc",
	}, got)
}

func TestExtractBonds_BranchContinuesMainChain(t *testing.T) {
	t.Parallel()
	got := ExtractBonds("Neu5Ac(a2-3)Gal(b1-4)[Fuc(a1-3)]GlcNAc(b1-2)Man")
	assert.Equal(t, []string{
		"Neu5Ac*a2-3*Gal",
		"Gal*b1-4*GlcNAc",
		"Fuc*a1-3*GlcNAc",
		"GlcNAc*b1-2*Man",
	}, got)
}

func TestExtractBonds_SingleSugarHasNoBonds(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ExtractBonds("GlcNAc"))
}

func TestExtractBonds_EmptyString(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ExtractBonds(""))
}
