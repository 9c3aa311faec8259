package mapping

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildjak/clsmap/internal/classfile/model"
)

func TestBuildSingleEntry(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("javax/", "jakarta/"))

	tbl, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, 6, tbl.MinFromLength())
	assert.Equal(t, []byte("javax/"), tbl.Entries()[1].From)
	assert.Equal(t, []byte("jakarta/"), tbl.Entries()[1].To)
}

func TestBuildComputesMinFromLength(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("javax/xml", "jakarta/xml"))
	require.NoError(t, b.Add("javax/mail", "jakarta/mail"))

	tbl, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, len("javax/xml"), tbl.MinFromLength())
}

func TestAddRejectsEmpty(t *testing.T) {
	b := NewBuilder()
	err := b.Add("", "jakarta/")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	err = b.Add("javax/", "")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestAddRejectsContainment(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("javax/security", "jakarta/security"))

	err := b.Add("javax/security/auth", "jakarta/security/auth")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	err = b.Add("javax/", "jakarta/")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestAddPreservesEarlierEntriesOnRejection(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("javax/", "jakarta/"))
	require.Error(t, b.Add("javax/xml", "jakarta/xml"))

	tbl, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
}

func TestBuildRequiresAtLeastOneEntry(t *testing.T) {
	b := NewBuilder()
	_, err := b.Build()
	assert.ErrorIs(t, err, model.ErrIllegalState)
}

func TestBuildIsSpentAfterFirstCall(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("javax/", "jakarta/"))

	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, model.ErrIllegalState)

	err = b.Add("other/", "else/")
	assert.ErrorIs(t, err, model.ErrIllegalState)
}

func TestBuilderRejectsCrossGoroutineUse(t *testing.T) {
	b := NewBuilder()

	errCh := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		errCh <- b.Add("javax/", "jakarta/")
	}()
	wg.Wait()

	err := <-errCh
	assert.ErrorIs(t, err, model.ErrThreadBindingViolation)
}
