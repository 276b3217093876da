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

import "github.com/ecodeclub/netflex/internal/notification/internal/domain"

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Notification struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Link    string `json:"link"`
	VideoID int64  `json:"videoId"`
	Ctime   int64  `json:"createdAt"`
}

type NotificationList struct {
	List  []Notification `json:"list"`
	Total int64          `json:"total"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:      n.ID,
		Type:    string(n.Type),
		Message: n.Message,
		Link:    n.Link,
		VideoID: n.VideoID,
		Ctime:   n.Ctime,
	}
}
