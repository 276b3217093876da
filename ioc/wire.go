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

package ioc

import (
	"github.com/ecodeclub/netflex/internal/comment"
	"github.com/ecodeclub/netflex/internal/notification"
	"github.com/ecodeclub/netflex/internal/rating"
	"github.com/ecodeclub/netflex/internal/user"
	"github.com/ecodeclub/netflex/internal/video"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitUserModule,
		video.InitModule,
		InitNotificationModule,
		comment.InitModule,
		rating.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*video.Module), "Hdl"),
		wire.FieldsOf(new(*comment.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*rating.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl", "PurgeJob", "WebhookConsumer"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
