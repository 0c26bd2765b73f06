// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps"
	lumpsmock "github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps/mock"
)

// ExpectRunSaved expects one Save of a run with the given id and returns
// a Redis style location for it. The saved run is passed to inspect when
// it is not nil.
func ExpectRunSaved(ctx context.Context, repo *lumpsmock.MockRepository, id string, inspect func(*lumps.Run)) *gomock.Call {
	return repo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *lumps.SaveInput) (*lumps.SaveOutput, error) {
			if input.Run.ID != id {
				return nil, errors.Internalf("unexpected run id %s, want %s", input.Run.ID, id)
			}
			if inspect != nil {
				inspect(input.Run)
			}
			return &lumps.SaveOutput{Location: "dehconv:run:" + id}, nil
		})
}

// ExpectRunLoaded expects one Load of run.ID and returns run
func ExpectRunLoaded(ctx context.Context, repo *lumpsmock.MockRepository, run *lumps.Run) *gomock.Call {
	return repo.EXPECT().
		Load(ctx, &lumps.LoadInput{ID: run.ID}).
		Return(&lumps.LoadOutput{Run: run}, nil)
}
