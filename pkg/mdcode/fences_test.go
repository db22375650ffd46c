package mdcode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tsblank/pkg/mdcode"
)

func TestFences(t *testing.T) {
	t.Parallel()

	src := []byte("text\n\n```ts {1}\nlet a = 1;\nlet b = 2;\n```\n\n```\nplain\n```\n\n    indented code\n")
	fences, err := mdcode.NewExtractor(mdcode.FlavorGFM).Fences(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, fences, 2)

	first := fences[0]
	assert.Equal(t, "ts {1}", first.Info)
	assert.Equal(t, "ts", string(src[first.TagStart:first.TagEnd]))
	assert.Equal(t, "let a = 1;\nlet b = 2;\n", string(first.Code(src)))
	assert.True(t, first.Contiguous)

	second := fences[1]
	assert.Empty(t, second.Info)
	assert.Equal(t, -1, second.TagStart)
	assert.Equal(t, "plain\n", string(second.Code(src)))
}

func TestFences_ListItem(t *testing.T) {
	t.Parallel()

	src := []byte("- item\n\n  ```ts\n  let a: A;\n  let b: B;\n  ```\n")
	fences, err := mdcode.NewExtractor(mdcode.FlavorCommonMark).Fences(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, fences, 1)
	assert.False(t, fences[0].Contiguous)
}
