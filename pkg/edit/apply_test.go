package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpadhq/markpad/pkg/edit"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []edit.Edit
		want    string
	}{
		{
			name:    "no edits returns original",
			content: "hello world",
			edits:   nil,
			want:    "hello world",
		},
		{
			name:    "single replacement",
			content: "hello world",
			edits:   []edit.Edit{{Start: 0, End: 5, Text: "hi"}},
			want:    "hi world",
		},
		{
			name:    "insertion",
			content: "hello world",
			edits:   []edit.Edit{{Start: 5, End: 5, Text: " big"}},
			want:    "hello big world",
		},
		{
			name:    "deletion",
			content: "hello world",
			edits:   []edit.Edit{{Start: 5, End: 11, Text: ""}},
			want:    "hello",
		},
		{
			name:    "multiple replacements apply in one pass",
			content: "cat cat cat",
			edits: []edit.Edit{
				{Start: 0, End: 3, Text: "dog"},
				{Start: 4, End: 7, Text: "dog"},
				{Start: 8, End: 11, Text: "dog"},
			},
			want: "dog dog dog",
		},
		{
			name:    "replacement longer than original does not shift later edits",
			content: "a b a",
			edits: []edit.Edit{
				{Start: 0, End: 1, Text: "alpha"},
				{Start: 4, End: 5, Text: "alpha"},
			},
			want: "alpha b alpha",
		},
		{
			name:    "adjacent edits",
			content: "abcdef",
			edits: []edit.Edit{
				{Start: 0, End: 2, Text: "XX"},
				{Start: 2, End: 4, Text: "YY"},
				{Start: 4, End: 6, Text: "ZZ"},
			},
			want: "XXYYZZ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prepared, err := edit.Prepare(tt.edits, len(tt.content))
			require.NoError(t, err)
			got := edit.Apply(tt.content, prepared)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareErrors(t *testing.T) {
	t.Parallel()

	t.Run("negative start", func(t *testing.T) {
		t.Parallel()
		_, err := edit.Prepare([]edit.Edit{{Start: -1, End: 2}}, 10)
		var verr *edit.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("end before start", func(t *testing.T) {
		t.Parallel()
		_, err := edit.Prepare([]edit.Edit{{Start: 5, End: 2}}, 10)
		var verr *edit.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("end past content", func(t *testing.T) {
		t.Parallel()
		_, err := edit.Prepare([]edit.Edit{{Start: 0, End: 11}}, 10)
		var verr *edit.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("overlap rejected", func(t *testing.T) {
		t.Parallel()
		_, err := edit.Prepare([]edit.Edit{
			{Start: 0, End: 5, Text: "x"},
			{Start: 3, End: 8, Text: "y"},
		}, 10)
		var cerr *edit.ConflictError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("unsorted input is sorted", func(t *testing.T) {
		t.Parallel()
		prepared, err := edit.Prepare([]edit.Edit{
			{Start: 6, End: 7, Text: "y"},
			{Start: 0, End: 1, Text: "x"},
		}, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, prepared[0].Start)
	})
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	b := edit.NewBuilder()
	b.Replace(0, 3, "dog")
	b.Insert(4, "!")
	b.Delete(5, 6)

	require.Len(t, b.Edits, 3)
	assert.Equal(t, edit.Edit{Start: 0, End: 3, Text: "dog"}, b.Edits[0])
	assert.Equal(t, edit.Edit{Start: 4, End: 4, Text: "!"}, b.Edits[1])
	assert.Equal(t, edit.Edit{Start: 5, End: 6, Text: ""}, b.Edits[2])
}
