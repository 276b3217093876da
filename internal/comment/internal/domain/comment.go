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

package domain

type User struct {
	ID       int64
	Username string
	Avatar   string
}

type Comment struct {
	ID int64
	// 评论的人
	User User
	// 评论的视频
	VideoID int64
	// ParentID 要回复的评论，0 表示顶层评论
	ParentID int64
	// AncestorID 所在讨论串的顶层评论，0 表示自身就是顶层评论
	AncestorID int64

	Content string
	// 评论时间，评论本身不允许修改
	Ctime int64

	Likes    int64
	Dislikes int64
	// 当前查看者的评价，没有查看者时都是 false
	LikedByUser    bool
	DislikedByUser bool

	// 按评论时间排序
	Replies []Comment
}

// IsRoot 是否为顶层评论
func (c Comment) IsRoot() bool {
	return c.ParentID == 0
}

// ThreadID 所在讨论串的顶层评论 ID
func (c Comment) ThreadID() int64 {
	if c.AncestorID != 0 {
		return c.AncestorID
	}
	return c.ID
}

type CreateComment struct {
	Content  string
	VideoID  int64
	ParentID int64
}

// RatingStats 某条评论的点赞、点踩数
type RatingStats struct {
	CommentID int64
	Likes     int64
	Dislikes  int64
}
