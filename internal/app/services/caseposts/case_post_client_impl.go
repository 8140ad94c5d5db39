package caseposts

import (
	"context"
	"fmt"
	"net/url"

	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
	"docnet-client/internal/pkg/exceptions"
	"docnet-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type casePostClient struct {
	Rest restclient.RestClient
	Log  *zap.Logger
}

func NewCasePostClient(rest restclient.RestClient, logger *zap.Logger) CasePostClient {
	return &casePostClient{
		Rest: rest,
		Log:  logger,
	}
}

func (c *casePostClient) List(ctx context.Context) ([]responses.CasePost, error) {
	var posts []responses.CasePost
	err := c.Rest.DoJSON(ctx, constvars.MethodGet, constvars.EndpointCasePosts, nil, nil, &posts)
	if err != nil {
		c.Log.Error("casePostClient.List error fetching posts",
			zap.Error(err),
		)
		return nil, err
	}
	return posts, nil
}

func (c *casePostClient) Create(ctx context.Context, request *requests.CreateCasePost, attachment *restclient.FilePart) (*responses.CasePost, error) {
	utils.SanitizeCreateCasePostRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	// The backend expects the post as a JSON part named "post" with the
	// attachment, if any, alongside in "file".
	form := &restclient.MultipartForm{
		JSONParts: map[string][]byte{constvars.MultipartPartPost: payload},
		File:      attachment,
	}

	created := new(responses.CasePost)
	if err := c.Rest.DoMultipart(ctx, constvars.EndpointCasePosts, form, created); err != nil {
		c.Log.Error("casePostClient.Create error creating post",
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("casePostClient.Create succeeded",
		zap.String(constvars.LoggingPostIDKey, created.ID),
	)
	return created, nil
}

func (c *casePostClient) Like(ctx context.Context, postID, userID string) (*responses.CasePost, error) {
	query := url.Values{constvars.QueryParamUserID: []string{userID}}
	path := fmt.Sprintf(constvars.EndpointCasePostLike, postID)

	updated := new(responses.CasePost)
	err := c.Rest.DoJSON(ctx, constvars.MethodPost, path, query, nil, updated)
	if err != nil {
		if exceptions.IsConflict(err) {
			// Second like from the same user; the local count stays as-is.
			c.Log.Warn("casePostClient.Like user already liked this post",
				zap.String(constvars.LoggingPostIDKey, postID),
				zap.String(constvars.LoggingUserIDKey, userID),
			)
			return nil, exceptions.ErrAlreadyLiked(err)
		}
		c.Log.Error("casePostClient.Like error liking post",
			zap.String(constvars.LoggingPostIDKey, postID),
			zap.Error(err),
		)
		return nil, err
	}
	return updated, nil
}

func (c *casePostClient) AddComment(ctx context.Context, postID string, request *requests.CreateComment) (*responses.CasePost, error) {
	utils.SanitizeCreateCommentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	path := fmt.Sprintf(constvars.EndpointCasePostComments, postID)
	updated := new(responses.CasePost)
	if err := c.Rest.DoJSON(ctx, constvars.MethodPost, path, nil, request, updated); err != nil {
		c.Log.Error("casePostClient.AddComment error adding comment",
			zap.String(constvars.LoggingPostIDKey, postID),
			zap.Error(err),
		)
		return nil, err
	}
	return updated, nil
}

func (c *casePostClient) DownloadAttachment(ctx context.Context, fileName string) ([]byte, error) {
	path := fmt.Sprintf(constvars.EndpointCasePostFile, url.PathEscape(fileName))
	data, err := c.Rest.Download(ctx, path)
	if err != nil {
		c.Log.Error("casePostClient.DownloadAttachment error downloading file",
			zap.String(constvars.LoggingFileNameKey, fileName),
			zap.Error(err),
		)
		return nil, err
	}
	return data, nil
}
