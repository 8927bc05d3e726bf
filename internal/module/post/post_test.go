package post

import (
	"testing"

	"college-platform-backend/internal/global/jwt"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/test"
)

var studentPayload = jwt.Payload{UserID: 1, Username: "student1", RoleID: 0}

func TestCreatePostUnauthorized(t *testing.T) {
	resp := test.DoRequest(t, CreatePost, PostCreateReq{
		Title:    "测试帖子",
		Category: "生活服务",
	})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}

func TestCreatePostInvalidCategory(t *testing.T) {
	resp := test.DoRequestAs(t, CreatePost, studentPayload, PostCreateReq{
		Title:    "测试帖子",
		Category: "不存在的分类",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestCreatePostMissingMetadata(t *testing.T) {
	resp := test.DoRequestAs(t, CreatePost, studentPayload, PostCreateReq{
		Title:    "出售自行车",
		Category: "二手交易",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestToggleReactionUnauthorized(t *testing.T) {
	resp := test.DoRequest(t, ToggleReaction, ReactionReq{PostID: 1, Type: "like"})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}

func TestToggleReactionInvalidType(t *testing.T) {
	resp := test.DoRequestAs(t, ToggleReaction, studentPayload, ReactionReq{
		PostID: 1,
		Type:   "unknown",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
