package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

func TestCommentRepositoryListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: 1, UserID: 1, Author: "a", Content: "첫 댓글"}))
	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: 1, UserID: 2, Author: "b", Content: "둘째 댓글"}))
	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: 2, UserID: 1, Author: "a", Content: "다른 글 댓글"}))

	comments, err := repo.ListByPost(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
}

func TestCommentRepositoryDeleteOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := models.Comment{PostID: 1, UserID: 1, Author: "a", Content: "내 댓글"}
	require.NoError(t, repo.Create(ctx, &comment))

	require.ErrorIs(t, repo.DeleteOwned(ctx, comment.ID, 2, false), gorm.ErrRecordNotFound)
	require.NoError(t, repo.DeleteOwned(ctx, comment.ID, 1, false))

	other := models.Comment{PostID: 1, UserID: 1, Author: "a", Content: "또 댓글"}
	require.NoError(t, repo.Create(ctx, &other))
	require.NoError(t, repo.DeleteOwned(ctx, other.ID, 99, true), "admins bypass the owner predicate")
}

func TestCommentRepositoryListModeration(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, models.User{Nickname: "현재 닉네임", Email: "mod@example.com", Role: models.RoleUser, Status: models.UserStatusActive})
	post := seedPost(t, db, models.Post{Title: "원글 제목", Content: "내용", Author: "글쓴이", UserID: user.ID, Status: models.PostStatusVisible})

	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: post.ID, UserID: user.ID, Author: "옛 닉네임", Content: "댓글"}))

	rows, err := repo.ListModeration(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "원글 제목", rows[0].PostTitle)
	require.Equal(t, "현재 닉네임", rows[0].Author, "queue shows the commenter's current nickname")
}
