package resolver

import (
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/ortoo/marketfeed/model"
	"github.com/ortoo/marketfeed/storage"
	"github.com/pkg/errors"
)

// Multipart uploads arrive as raw bytes, there is no per-part
// Content-Transfer-Encoding to carry over.
const defaultTransferEncoding = "binary"

// processUploads transfers every pending upload to the file store and returns
// the resulting file records. Transfers run concurrently but the output is
// index-addressed: files[i] always describes uploads[i], no matter which
// transfer finished first. A failure of any single transfer fails the whole
// batch so that a creation mutation never persists a partial file set.
func processUploads(store storage.FileStore, uploads []*graphql.Upload) ([]*model.File, error) {
	files := make([]*model.File, len(uploads))
	uploadErrs := make([]error, len(uploads))

	var wg sync.WaitGroup
	for idx := range uploads {
		wg.Add(1)
		go func(idx int, upload *graphql.Upload) {
			defer wg.Done()

			url, err := store.Store(upload.Filename, upload.ContentType, upload.File)
			if err != nil {
				uploadErrs[idx] = err
				return
			}
			files[idx] = &model.File{
				Id:       uuid.New().String(),
				Filename: upload.Filename,
				Mimetype: upload.ContentType,
				Encoding: defaultTransferEncoding,
				Url:      url,
			}
		}(idx, uploads[idx])
	}
	wg.Wait()

	for idx, err := range uploadErrs {
		if err != nil {
			return nil, errors.Wrapf(err, "upload failed for file %s", uploads[idx].Filename)
		}
	}
	return files, nil
}
