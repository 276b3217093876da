// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/netflex/internal/comment/internal/domain"
)

type CreateReq struct {
	Content string `json:"content"`
	// UserID 可以不传，传了必须是当前用户
	UserID          int64  `json:"userId"`
	VideoID         int64  `json:"videoId"`
	ParentCommentID *int64 `json:"parentCommentId"`
}

type Comment struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	DatePosted int64  `json:"datePosted"`
	VideoID    int64  `json:"videoId"`

	UserID        int64  `json:"userId"`
	Username      string `json:"username"`
	UserAvatarURL string `json:"userAvatarUrl"`

	// 顶层评论为 null
	ParentCommentID *int64 `json:"parentCommentId"`

	Likes          int64 `json:"likes"`
	Dislikes       int64 `json:"dislikes"`
	LikedByUser    bool  `json:"likedByUser"`
	DislikedByUser bool  `json:"dislikedByUser"`

	Replies []Comment `json:"replies"`
}

func newComment(c domain.Comment) Comment {
	res := Comment{
		ID:             c.ID,
		Content:        c.Content,
		DatePosted:     c.Ctime,
		VideoID:        c.VideoID,
		UserID:         c.User.ID,
		Username:       c.User.Username,
		UserAvatarURL:  c.User.Avatar,
		Likes:          c.Likes,
		Dislikes:       c.Dislikes,
		LikedByUser:    c.LikedByUser,
		DislikedByUser: c.DislikedByUser,
		Replies:        newComments(c.Replies),
	}
	if !c.IsRoot() {
		parentID := c.ParentID
		res.ParentCommentID = &parentID
	}
	return res
}

func newComments(cs []domain.Comment) []Comment {
	if len(cs) == 0 {
		return []Comment{}
	}
	return slice.Map(cs, func(_ int, src domain.Comment) Comment {
		return newComment(src)
	})
}
