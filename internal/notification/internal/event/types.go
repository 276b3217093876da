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

package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/netflex/internal/notification/internal/domain"
	"github.com/ecodeclub/netflex/internal/pkg/mqx"
)

const NotificationEventName = "notification_events"

type NotificationEvent struct {
	ID      int64  `json:"id"`
	Uid     int64  `json:"uid"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Link    string `json:"link"`
	VideoID int64  `json:"videoId"`
	Ctime   int64  `json:"ctime"`
}

func NewNotificationEvent(n domain.Notification) NotificationEvent {
	return NotificationEvent{
		ID:      n.ID,
		Uid:     n.Uid,
		Type:    string(n.Type),
		Message: n.Message,
		Link:    n.Link,
		VideoID: n.VideoID,
		Ctime:   n.Ctime,
	}
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=./mocks/notification_event.mock.go NotificationEventProducer
type NotificationEventProducer interface {
	Produce(ctx context.Context, evt NotificationEvent) error
}

func NewNotificationEventProducer(q mq.MQ) (NotificationEventProducer, error) {
	return mqx.NewGeneralProducer[NotificationEvent](q, NotificationEventName)
}
