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

type Type string

const (
	// TypeNewComment 视频收到了新的顶层评论，通知上传者
	TypeNewComment Type = "NEW_COMMENT"
	// TypeNewReply 视频下的评论收到了回复，通知上传者
	TypeNewReply Type = "NEW_REPLY"
	// TypeCommentReply 评论收到了回复，通知评论者
	TypeCommentReply Type = "COMMENT_REPLY"
)

func (t Type) Valid() bool {
	switch t {
	case TypeNewComment, TypeNewReply, TypeCommentReply:
		return true
	default:
		return false
	}
}

// Notification 创建之后不会再修改
type Notification struct {
	ID      int64
	Uid     int64
	Type    Type
	Message string
	Link    string
	VideoID int64
	Ctime   int64
}
