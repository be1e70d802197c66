package field_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

func alwaysFalse[V any](V) field.Result[string] {
	return field.Invalid[string]()
}

func TestNewInitialState(t *testing.T) {
	t.Parallel()

	cell := field.New("hello", "static hint", alwaysFalse[string])

	assert.Equal(t, "hello", cell.Value())
	assert.Equal(t, "hello", cell.SavePoint())
	assert.True(t, cell.Valid())

	hint, ok := cell.Hint()
	assert.False(t, ok)
	assert.Empty(t, hint)
}

func TestNewPanicsOnNilValidator(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		field.New[string, string]("", "hint", nil)
	})
}

func TestNewWithStorePanicsOnNilStore(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		field.NewWithStore[string, string](nil, "hint", alwaysFalse[string])
	})
}

func TestSetDoesNotValidate(t *testing.T) {
	t.Parallel()

	calls := 0
	cell := field.New("", "hint", func(string) field.Result[string] {
		calls++
		return field.Invalid[string]()
	})

	cell.Set("changed")

	assert.Equal(t, "changed", cell.Value())
	assert.Zero(t, calls, "Set must not invoke the validator")
	assert.True(t, cell.Valid(), "Set must not touch the hint")
	assert.Equal(t, "", cell.SavePoint(), "Set must not touch the save point")
}

func TestUpdateAppliesToCurrentValue(t *testing.T) {
	t.Parallel()

	cell := field.New("Initial", "hint", alwaysFalse[string])

	cell.Update(func(prev string) string { return prev + "X" })

	assert.Equal(t, "InitialX", cell.Value())
}

func TestUpdateChainsCompose(t *testing.T) {
	t.Parallel()

	cell := field.New(1, "hint", alwaysFalse[int])

	cell.Update(func(n int) int { return n * 10 })
	cell.Update(func(n int) int { return n + 5 })

	assert.Equal(t, 15, cell.Value())
}

func TestValidateFalseSetsStaticHint(t *testing.T) {
	t.Parallel()

	cell := field.New("", "Hint", alwaysFalse[string])

	assert.False(t, cell.Validate())
	assert.False(t, cell.Valid())

	hint, ok := cell.Hint()
	require.True(t, ok)
	assert.Equal(t, "Hint", hint)
}

func TestValidateDynamicHint(t *testing.T) {
	t.Parallel()

	cell := field.New("", "Hint", func(string) field.Result[string] {
		return field.InvalidHint("Dynamic")
	})

	assert.False(t, cell.Validate())

	hint, ok := cell.Hint()
	require.True(t, ok)
	assert.Equal(t, "Dynamic", hint)
}

func TestValidateTrueClearsHint(t *testing.T) {
	t.Parallel()

	valid := false
	cell := field.New("", "Hint", func(string) field.Result[string] {
		if valid {
			return field.Valid[string]()
		}
		return field.Invalid[string]()
	})

	require.False(t, cell.Validate())
	require.False(t, cell.Valid())

	valid = true
	assert.True(t, cell.Validate())
	assert.True(t, cell.Valid())

	hint, ok := cell.Hint()
	assert.False(t, ok)
	assert.Empty(t, hint)
}

func TestValidateUsesCurrentValue(t *testing.T) {
	t.Parallel()

	cell := field.New("", "Hint", func(v string) field.Result[string] {
		if v == "X" {
			return field.Valid[string]()
		}
		return field.Invalid[string]()
	})

	cell.Set("X")

	assert.True(t, cell.Validate())
	assert.True(t, cell.Valid())
}

func TestValidatorPanicPropagates(t *testing.T) {
	t.Parallel()

	cell := field.New("", "Hint", func(string) field.Result[string] {
		panic("broken validator")
	})

	require.PanicsWithValue(t, "broken validator", func() {
		cell.Validate()
	})
}

func TestResetRestoresInitialValue(t *testing.T) {
	t.Parallel()

	cell := field.New("Init", "Hint", alwaysFalse[string])

	cell.Set("Changed")
	require.False(t, cell.Validate())

	cell.Reset()

	assert.Equal(t, "Init", cell.Value())
	assert.True(t, cell.Valid())
}

func TestResetIsIdempotent(t *testing.T) {
	t.Parallel()

	cell := field.New("Init", "Hint", alwaysFalse[string])
	cell.Set("Changed")
	require.False(t, cell.Validate())

	cell.Reset()
	first := cell.Snapshot()

	cell.Reset()
	assert.Equal(t, first, cell.Snapshot())
}

func TestCommitAdvancesSavePointToCurrentValue(t *testing.T) {
	t.Parallel()

	cell := field.New("Init", "Hint", alwaysFalse[string])

	cell.Set("Changed")
	cell.Commit()
	cell.Set("Other")

	cell.Reset()
	assert.Equal(t, "Changed", cell.Value())
}

func TestCommitValueAdvancesSavePointExplicitly(t *testing.T) {
	t.Parallel()

	cell := field.New("Init", "Hint", alwaysFalse[string])
	cell.Set("Current")

	cell.CommitValue("Explicit")
	assert.Equal(t, "Current", cell.Value(), "CommitValue must not change the value")

	cell.Reset()
	assert.Equal(t, "Explicit", cell.Value())
}

func TestCommitDoesNotTouchValueOrHint(t *testing.T) {
	t.Parallel()

	cell := field.New("Init", "Hint", alwaysFalse[string])
	require.False(t, cell.Validate())

	cell.Commit()

	assert.Equal(t, "Init", cell.Value())
	assert.False(t, cell.Valid(), "Commit must not clear the hint")
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	cell := field.New("Init", "Hint", alwaysFalse[string])
	cell.Set("Changed")
	require.False(t, cell.Validate())

	snap := cell.Snapshot()
	assert.Equal(t, "Changed", snap.Value)
	assert.Equal(t, "Hint", snap.Hint)
	assert.True(t, snap.HasHint)
	assert.Equal(t, "Init", snap.SavePoint)
}

func TestOnChangeNotifications(t *testing.T) {
	t.Parallel()

	var seen []field.Snapshot[string, string]
	cell := field.New("Init", "Hint", alwaysFalse[string],
		field.WithOnChange(func(s field.Snapshot[string, string]) {
			seen = append(seen, s)
		}),
	)

	cell.Set("Changed")
	cell.Validate()
	cell.Commit()
	cell.Reset()

	require.Len(t, seen, 4)
	assert.Equal(t, "Changed", seen[0].Value)
	assert.True(t, seen[1].HasHint)
	assert.Equal(t, "Changed", seen[2].SavePoint)
	assert.Equal(t, "Changed", seen[3].Value)
	assert.False(t, seen[3].HasHint)
}

func TestStructuredValueAndHintTypes(t *testing.T) {
	t.Parallel()

	type address struct {
		City string
		Zip  string
	}
	type problem struct {
		Field  string
		Reason string
	}

	cell := field.New(
		address{City: "Berlin", Zip: "10115"},
		problem{Reason: "address is invalid"},
		func(a address) field.Result[problem] {
			if !strings.HasPrefix(a.Zip, "1") {
				return field.InvalidHint(problem{Field: "zip", Reason: "unknown zip prefix"})
			}
			return field.Valid[problem]()
		},
	)

	require.True(t, cell.Validate())

	cell.Set(address{City: "Berlin", Zip: "9999"})
	require.False(t, cell.Validate())

	hint, ok := cell.Hint()
	require.True(t, ok)
	assert.Equal(t, "zip", hint.Field)

	cell.Reset()
	assert.Equal(t, "10115", cell.Value().Zip)
	assert.True(t, cell.Valid())
}
