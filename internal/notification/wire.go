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

//go:build wireinject

package notification

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/netflex/internal/notification/internal/event"
	"github.com/ecodeclub/netflex/internal/notification/internal/job"
	"github.com/ecodeclub/netflex/internal/notification/internal/repository"
	"github.com/ecodeclub/netflex/internal/notification/internal/service"
	"github.com/ecodeclub/netflex/internal/notification/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewNotificationRepository,
	event.NewNotificationEventProducer,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	webhookCfg *WebhookConfig,
	purgeCfg PurgeConfig) (*Module, error) {
	wire.Build(
		ProviderSet,
		event.NewWebhookPushConsumer,
		job.NewPurgeExpiredNotificationsJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
