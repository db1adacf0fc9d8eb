package dispatch

import (
	"context"

	"memoryaid/models"
)

// DispatchService turns one classified utterance into an action and a spoken
// response.
type DispatchService interface {
	Route(ctx context.Context, req models.UtteranceRequest) models.DispatchResult
}
