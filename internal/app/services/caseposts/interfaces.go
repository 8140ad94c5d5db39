package caseposts

import (
	"context"

	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
)

// CasePostClient talks to the case-discussion endpoints. Every mutation
// returns the server's representation of the affected post; callers replace
// their local copy with it so server-assigned fields (ids, timestamps, like
// counts) stay authoritative.
type CasePostClient interface {
	List(ctx context.Context) ([]responses.CasePost, error)
	Create(ctx context.Context, request *requests.CreateCasePost, attachment *restclient.FilePart) (*responses.CasePost, error)
	Like(ctx context.Context, postID, userID string) (*responses.CasePost, error)
	AddComment(ctx context.Context, postID string, request *requests.CreateComment) (*responses.CasePost, error)
	DownloadAttachment(ctx context.Context, fileName string) ([]byte, error)
}
