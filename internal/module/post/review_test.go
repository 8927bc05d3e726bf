package post

import (
	"net/http"
	"testing"

	"college-platform-backend/internal/global/jwt"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestReviewTransitionFromPending(t *testing.T) {
	require.Nil(t, reviewTransitionError(model.ReviewPending, model.ReviewApproved))
	require.Nil(t, reviewTransitionError(model.ReviewPending, model.ReviewRejected))
}

func TestReviewTransitionTerminal(t *testing.T) {
	// 已有审核结论的帖子不允许再次流转，返回 409
	for _, current := range []int{model.ReviewApproved, model.ReviewRejected} {
		for _, target := range []int{model.ReviewApproved, model.ReviewRejected} {
			e := reviewTransitionError(current, target)
			require.NotNil(t, e)
			require.Equal(t, response.ErrAlreadyExists.Code, e.Code)
			require.Equal(t, http.StatusConflict, e.Status)
		}
	}
}

func TestReviewTransitionInvalidTarget(t *testing.T) {
	for _, target := range []int{model.ReviewPending, 3, -1} {
		e := reviewTransitionError(model.ReviewPending, target)
		require.NotNil(t, e)
		require.Equal(t, response.ErrInvalidRequest.Code, e.Code)
	}
}

func TestCanViewPost(t *testing.T) {
	author := &jwt.Claims{Payload: jwt.Payload{UserID: 1, RoleID: model.RoleStudent}}
	other := &jwt.Claims{Payload: jwt.Payload{UserID: 2, RoleID: model.RoleStudent}}
	teacher := &jwt.Claims{Payload: jwt.Payload{UserID: 3, RoleID: model.RoleTeacher}}

	tests := []struct {
		name    string
		status  int
		viewer  *jwt.Claims
		visible bool
	}{
		{"已过审对其他学生可见", model.ReviewApproved, other, true},
		{"已过审无登录态也可见", model.ReviewApproved, nil, true},
		{"待审核对作者可见", model.ReviewPending, author, true},
		{"待审核对其他学生不可见", model.ReviewPending, other, false},
		{"待审核对教师可见", model.ReviewPending, teacher, true},
		{"待审核无登录态不可见", model.ReviewPending, nil, false},
		{"已拒绝对作者可见", model.ReviewRejected, author, true},
		{"已拒绝对其他学生不可见", model.ReviewRejected, other, false},
		{"已拒绝对教师可见", model.ReviewRejected, teacher, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Post{AuthorID: 1, ReviewStatus: tt.status}
			require.Equal(t, tt.visible, canViewPost(tt.viewer, p))
		})
	}
}
