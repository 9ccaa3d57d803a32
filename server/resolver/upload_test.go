package resolver

import (
	"strings"
	"testing"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/ortoo/marketfeed/storage"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingUpload(name string, content string) *graphql.Upload {
	return &graphql.Upload{
		File:        strings.NewReader(content),
		Filename:    name,
		Size:        int64(len(content)),
		ContentType: "image/png",
	}
}

func TestProcessUploadsPreservesInputOrder(t *testing.T) {
	// c completes first, then a, then b.
	store := &storage.FakeFileStore{
		Delays: map[string]time.Duration{
			"a.png": 30 * time.Millisecond,
			"b.png": 60 * time.Millisecond,
		},
	}

	files, err := processUploads(store, []*graphql.Upload{
		pendingUpload("a.png", "aaa"),
		pendingUpload("b.png", "bbb"),
		pendingUpload("c.png", "ccc"),
	})
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "a.png", files[0].Filename)
	assert.Equal(t, "b.png", files[1].Filename)
	assert.Equal(t, "c.png", files[2].Filename)
	assert.Equal(t, []string{"c.png", "a.png", "b.png"}, store.StoredKeys())

	for _, file := range files {
		assert.NotEmpty(t, file.Id)
		assert.Equal(t, "image/png", file.Mimetype)
		assert.Equal(t, "https://fake-store.local/"+file.Filename, file.Url)
	}
}

func TestProcessUploadsFailsTheWholeBatch(t *testing.T) {
	store := &storage.FakeFileStore{
		Errs: map[string]error{"b.png": errors.New("connection reset")},
	}

	files, err := processUploads(store, []*graphql.Upload{
		pendingUpload("a.png", "aaa"),
		pendingUpload("b.png", "bbb"),
		pendingUpload("c.png", "ccc"),
	})
	assert.Error(t, err)
	assert.Nil(t, files)
}

func TestProcessUploadsEmptyInput(t *testing.T) {
	files, err := processUploads(&storage.FakeFileStore{}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
